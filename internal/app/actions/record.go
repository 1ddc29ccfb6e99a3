package actions

import (
	"context"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// EntryRecorded is the outcome of a successful RecordEntry invocation.
type EntryRecorded struct {
	Entry domain.Entry
}

// RecordEntry stores a new draft entry in the journal. Server-assigned
// fields on the input (ID, status, dispatch state) are overwritten; the
// store assigns identity and timestamps.
type RecordEntry struct {
	Journal ports.JournalStore
	Entry   domain.Entry
}

func (a RecordEntry) Validate() []string {
	var c straitjacket.Checklist
	c.Check(a.Journal != nil, "journal store is required")
	c.Merge(a.Entry.Validate())
	return c.Failures()
}

func (a RecordEntry) Invoke(ctx context.Context) (EntryRecorded, error) {
	e := a.Entry.Clone()
	e.ID = 0
	e.Status = domain.StatusDraft
	e.DispatchID = ""
	e.PublishedAt = nil

	created, err := a.Journal.Insert(ctx, e)
	if err != nil {
		return EntryRecorded{}, err
	}
	return EntryRecorded{Entry: created}, nil
}

var _ straitjacket.Action[EntryRecorded] = RecordEntry{}
