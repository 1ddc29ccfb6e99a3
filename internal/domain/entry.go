package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mbbx6spp/straitjacket"
)

const (
	// MaxTitleLength bounds entry titles, in runes.
	MaxTitleLength = 200
	// MaxTags bounds how many tags one entry may carry.
	MaxTags = 8
)

// Entry represents one journal entry. Entries begin as drafts; publishing
// relays them to the downstream relay service and records the dispatch ID,
// retracting takes them back out of circulation.
type Entry struct {
	ID          int64
	Title       string
	Body        string
	Tags        []string
	Status      Status
	DispatchID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

// Validate checks business rules for the Entry, reporting one message per
// violated rule in check order. The messages feed straitjacket.Make, so a
// bad entry fails action construction with every problem named at once.
func (e *Entry) Validate() []string {
	var c straitjacket.Checklist
	c.Check(strings.TrimSpace(e.Title) != "", "title is required")
	c.Checkf(utf8.RuneCountInString(e.Title) <= MaxTitleLength,
		"title must be at most %d characters", MaxTitleLength)
	c.Check(strings.TrimSpace(e.Body) != "", "body is required")
	c.Checkf(e.Status.IsValid(), "status is invalid: %q", e.Status)
	c.Checkf(len(e.Tags) <= MaxTags, "at most %d tags allowed, got %d", MaxTags, len(e.Tags))
	c.Check(!hasBlankTag(e.Tags), "tags must not be blank")
	return c.Failures()
}

// Published reports whether the entry is currently published.
func (e *Entry) Published() bool {
	return e.Status == StatusPublished
}

// Clone returns a deep copy so store reads never alias caller state.
func (e Entry) Clone() Entry {
	out := e
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.PublishedAt != nil {
		at := *e.PublishedAt
		out.PublishedAt = &at
	}
	return out
}

func hasBlankTag(tags []string) bool {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return true
		}
	}
	return false
}
