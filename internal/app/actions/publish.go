package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// MarkPublished transitions an entry to published and stamps the
// publication time. The caller reads the clock; the action stays
// deterministic.
type MarkPublished struct {
	Journal ports.JournalStore
	EntryID int64
	At      time.Time
}

func (a MarkPublished) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	c.Check(!a.At.IsZero(), "publication time is required")
	return c.Failures()
}

func (a MarkPublished) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}
	if cur.Published() {
		return straitjacket.Unit{}, fmt.Errorf("entry %d is already published: %w", a.EntryID, domain.ErrConflict)
	}

	at := a.At
	cur.Status = domain.StatusPublished
	cur.PublishedAt = &at

	if _, err := a.Journal.Update(ctx, cur); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = MarkPublished{}

// UnmarkPublished returns an entry to draft, clearing publication state.
// Compensation for MarkPublished, so it performs no state checks of its
// own.
type UnmarkPublished struct {
	Journal ports.JournalStore
	EntryID int64
}

func (a UnmarkPublished) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	return c.Failures()
}

func (a UnmarkPublished) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}

	cur.Status = domain.StatusDraft
	cur.PublishedAt = nil
	cur.DispatchID = ""

	if _, err := a.Journal.Update(ctx, cur); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = UnmarkPublished{}
