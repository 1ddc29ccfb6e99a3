package actions

import (
	"context"
	"fmt"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// DispatchEntry submits a published entry to the downstream relay and
// persists the dispatch ID the relay assigns. The entry must already be
// published (MarkPublished runs first); the store carries the dispatch ID
// between steps rather than the plan.
type DispatchEntry struct {
	Journal ports.JournalStore
	Relay   ports.RelayClient
	EntryID int64
}

func (a DispatchEntry) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.Relay != nil, "relay client is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	return c.Failures()
}

func (a DispatchEntry) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}
	if !cur.Published() {
		return straitjacket.Unit{}, fmt.Errorf("entry %d is not published: %w", a.EntryID, domain.ErrConflict)
	}

	d, err := a.Relay.Dispatch(ctx, cur)
	if err != nil {
		return straitjacket.Unit{}, err
	}

	cur.DispatchID = d.ID
	if _, err := a.Journal.Update(ctx, cur); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = DispatchEntry{}
