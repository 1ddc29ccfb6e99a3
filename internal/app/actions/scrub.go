package actions

import (
	"context"
	"fmt"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// ScrubEntry removes an entry from the journal. Published entries cannot be
// scrubbed while their dispatch is live; retract them first.
type ScrubEntry struct {
	Journal ports.JournalStore
	EntryID int64
}

func (a ScrubEntry) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Check(a.EntryID > 0, "entry id must be positive")
	return c.Failures()
}

func (a ScrubEntry) Invoke(ctx context.Context) (straitjacket.Unit, error) {
	cur, err := a.Journal.Get(ctx, a.EntryID)
	if err != nil {
		return straitjacket.Unit{}, err
	}
	if cur.Published() {
		return straitjacket.Unit{}, fmt.Errorf("entry %d is published: %w", a.EntryID, domain.ErrConflict)
	}
	if err := a.Journal.Delete(ctx, a.EntryID); err != nil {
		return straitjacket.Unit{}, err
	}
	return straitjacket.Unit{}, nil
}

var _ straitjacket.Action[straitjacket.Unit] = ScrubEntry{}
