package dto

import (
	"strings"

	"github.com/mbbx6spp/straitjacket"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateEntryRequest represents the JSON body for recording a new draft entry.
type CreateEntryRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// Validate reports structural problems in check order. The handler decode
// path feeds the result through straitjacket.Make, so a bad request fails
// with every problem named at once.
func (r *CreateEntryRequest) Validate() []string {
	var c straitjacket.Checklist
	c.Check(strings.TrimSpace(r.Title) != "", "title "+msgRequired)
	c.Check(strings.TrimSpace(r.Body) != "", "body "+msgRequired)
	c.Check(!hasBlankTag(r.Tags), "tags "+msgMustNotEmpty)
	return c.Failures()
}

// UpdateEntryRequest represents the JSON body for amending an existing entry.
// Amending replaces the entry's content wholesale, so title and body are
// required just as they are on create.
type UpdateEntryRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// Validate reports structural problems in check order.
func (r *UpdateEntryRequest) Validate() []string {
	var c straitjacket.Checklist
	c.Check(strings.TrimSpace(r.Title) != "", "title "+msgRequired)
	c.Check(strings.TrimSpace(r.Body) != "", "body "+msgRequired)
	c.Check(!hasBlankTag(r.Tags), "tags "+msgMustNotEmpty)
	return c.Failures()
}

// PublishBatchRequest represents the JSON body for publishing several
// entries in one request.
type PublishBatchRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
}

// Validate reports structural problems in check order. Per-entry publish
// failures are not checked here; they surface in the batch response.
func (r *PublishBatchRequest) Validate() []string {
	var c straitjacket.Checklist
	c.Check(len(r.EntryIDs) > 0, "entry_ids must not be empty")
	c.Check(allPositive(r.EntryIDs), "entry_ids must all be positive")
	return c.Failures()
}

func hasBlankTag(tags []string) bool {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return true
		}
	}
	return false
}

func allPositive(ids []int64) bool {
	for _, id := range ids {
		if id <= 0 {
			return false
		}
	}
	return true
}
