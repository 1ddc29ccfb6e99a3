package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// RevokeDispatch withdraws an entry's downstream dispatch and clears the
// recorded dispatch ID. A missing dispatch is tolerated: revoking twice, or
// revoking an entry that never dispatched, is a no-op.
type RevokeDispatch struct {
	Journal ports.JournalStore
	Relay   ports.RelayClient
	EntryID int64
}

func (a RevokeDispatch) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.Relay != nil, "relay client is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	return c.Failures()
}

func (a RevokeDispatch) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}
	if cur.DispatchID == "" {
		return straitjacket.Unit{}, nil
	}

	if err := a.Relay.Revoke(ctx, cur.DispatchID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return straitjacket.Unit{}, err
	}

	cur.DispatchID = ""
	if _, err := a.Journal.Update(ctx, cur); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = RevokeDispatch{}

// MarkRetracted transitions a published entry to retracted. The publication
// timestamp is kept as history; the dispatch must be revoked first.
type MarkRetracted struct {
	Journal ports.JournalStore
	EntryID int64
}

func (a MarkRetracted) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	return c.Failures()
}

func (a MarkRetracted) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}
	if !cur.Published() {
		return straitjacket.Unit{}, fmt.Errorf("entry %d is not published: %w", a.EntryID, domain.ErrConflict)
	}

	cur.Status = domain.StatusRetracted
	if _, err := a.Journal.Update(ctx, cur); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = MarkRetracted{}
