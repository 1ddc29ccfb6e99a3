package actions

import (
	"context"
	"fmt"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// EntryAmended is the outcome of a successful AmendEntry invocation.
type EntryAmended struct {
	Entry domain.Entry
}

// AmendEntry replaces an entry's content. Published entries cannot be
// amended; retract them first.
type AmendEntry struct {
	Journal ports.JournalStore
	EntryID int64
	Title   string
	Body    string
	Tags    []string
}

func (a AmendEntry) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	draft := domain.Entry{Title: a.Title, Body: a.Body, Tags: a.Tags, Status: domain.StatusDraft}
	c.Merge(draft.Validate())
	return c.Failures()
}

func (a AmendEntry) Invoke(ctx context.Context) (EntryAmended, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return EntryAmended{}, err
	}
	if cur.Published() {
		return EntryAmended{}, fmt.Errorf("entry %d is published: %w", a.EntryID, domain.ErrConflict)
	}

	cur.Title = a.Title
	cur.Body = a.Body
	cur.Tags = append([]string(nil), a.Tags...)

	updated, err := a.Journal.Update(ctx, cur)
	if err != nil {
		return EntryAmended{}, err
	}
	return EntryAmended{Entry: updated}, nil
}

var _ straitjacket.Action[EntryAmended] = AmendEntry{}
