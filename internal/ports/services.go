package ports

import (
	"context"

	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// JournalService defines the service port for journal entry operations.
// Implemented by the application layer; called by inbound adapters
// (handlers). Reads go straight to the store; every write is routed through
// an action so that validation, invocation, and outcome observation follow
// one calling convention.
type JournalService interface {
	// ListEntries returns entries matching the given filter criteria.
	// Pass a zero-value EntryFilter to list all entries.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// GetEntry returns a single entry by ID.
	// Returns domain.ErrNotFound if the entry does not exist.
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)

	// CreateEntry records a new draft entry and returns the created entity
	// with server-assigned fields (ID, timestamps).
	// Returns straitjacket.ErrValidation if the entry fails validation.
	CreateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)

	// UpdateEntry amends an existing entry's title, body, or tags and
	// returns the updated entity.
	// Returns domain.ErrNotFound if the entry does not exist.
	// Returns domain.ErrConflict if the entry is already published.
	UpdateEntry(ctx context.Context, id int64, entry *domain.Entry) (*domain.Entry, error)

	// DeleteEntry scrubs an entry from the journal.
	// Returns domain.ErrNotFound if the entry does not exist.
	// Returns domain.ErrConflict if the entry is currently published.
	DeleteEntry(ctx context.Context, id int64) error

	// PublishEntry marks an entry published and dispatches it to the
	// downstream relay. The two writes are staged and committed together;
	// if the dispatch fails, the status change is compensated.
	// Returns domain.ErrNotFound if the entry does not exist.
	// Returns domain.ErrConflict if the entry is already published.
	// Returns domain.ErrUnavailable if the relay cannot accept dispatches.
	PublishEntry(ctx context.Context, id int64) (*domain.Entry, error)

	// RetractEntry withdraws a published entry: the downstream dispatch is
	// revoked, then the entry is marked retracted.
	// Returns domain.ErrNotFound if the entry does not exist.
	// Returns domain.ErrConflict if the entry is not published.
	RetractEntry(ctx context.Context, id int64) (*domain.Entry, error)

	// PublishBatch publishes multiple entries concurrently. Uses partial
	// success semantics: each publish succeeds or fails independently.
	// Returns a hard error only for request-level failures; per-entry
	// failures are collected in BatchResult.Errors.
	PublishBatch(ctx context.Context, ids []int64) (*BatchResult, error)
}

// BatchError records a single failed publish within a batch operation.
type BatchError struct {
	EntryID int64
	Err     error
}

// BatchResult holds the outcomes of a batch publish operation.
// Published contains relayed entries; Errors contains per-entry failures.
type BatchResult struct {
	Published []domain.Entry
	Errors    []BatchError
}
