package ports

import (
	"context"

	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// JournalStore defines the storage port for journal entries. Implemented by
// the store adapter; called from action bodies in the application layer.
// Implementations must be safe for concurrent use and must not alias
// returned entries with internal state.
type JournalStore interface {
	// Insert stores a new entry and returns it with ID and timestamps set.
	// Returns domain.ErrConflict if a draft with the same title exists.
	Insert(ctx context.Context, entry domain.Entry) (domain.Entry, error)

	// Get returns a single entry by ID.
	// Returns domain.ErrNotFound if the entry does not exist.
	Get(ctx context.Context, id int64) (domain.Entry, error)

	// List returns entries matching the filter, ordered by ID.
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// Update replaces an existing entry and returns the stored result.
	// Returns domain.ErrNotFound if the entry does not exist.
	Update(ctx context.Context, entry domain.Entry) (domain.Entry, error)

	// Delete removes an entry by ID.
	// Returns domain.ErrNotFound if the entry does not exist.
	Delete(ctx context.Context, id int64) error
}
