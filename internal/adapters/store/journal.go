// Package store provides the in-memory JournalStore adapter. Entries
// live in a mutex-guarded map with monotonically increasing IDs. The
// adapter is the service's system of record; a database-backed
// implementation can replace it behind the same port.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.JournalStore  = (*Journal)(nil)
	_ ports.HealthChecker = (*Journal)(nil)
)

// Journal is a thread-safe in-memory implementation of
// [ports.JournalStore]. Entries are copied on the way in and out, so
// callers never alias internal state.
type Journal struct {
	mu      sync.RWMutex
	entries map[int64]domain.Entry
	nextID  int64
	now     func() time.Time
}

// NewJournal creates an empty journal store.
func NewJournal() *Journal {
	return &Journal{
		entries: make(map[int64]domain.Entry),
		now:     time.Now,
	}
}

// Insert stores a new entry, assigning its ID and timestamps. A draft
// whose title exactly matches another draft's title is rejected with
// domain.ErrConflict.
func (s *Journal) Insert(_ context.Context, entry domain.Entry) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing.Status == domain.StatusDraft && existing.Title == entry.Title {
			return domain.Entry{}, fmt.Errorf("draft titled %q already exists: %w", entry.Title, domain.ErrConflict)
		}
	}

	s.nextID++
	stored := entry.Clone()
	stored.ID = s.nextID
	now := s.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.entries[stored.ID] = stored

	return stored.Clone(), nil
}

// Get returns the entry with the given ID.
func (s *Journal) Get(_ context.Context, id int64) (domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}
	return entry.Clone(), nil
}

// List returns entries matching the filter, ordered by ID.
func (s *Journal) List(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Entry
	for _, entry := range s.entries {
		if filter.Matches(entry) {
			out = append(out, entry.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces an existing entry. The stored CreatedAt is preserved
// and UpdatedAt is stamped by the store.
func (s *Journal) Update(_ context.Context, entry domain.Entry) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[entry.ID]
	if !ok {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", entry.ID, domain.ErrNotFound)
	}

	stored := entry.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.now().UTC()
	s.entries[stored.ID] = stored

	return stored.Clone(), nil
}

// Delete removes an entry by ID.
func (s *Journal) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}
	delete(s.entries, id)
	return nil
}

// Name identifies the store in health reports.
func (s *Journal) Name() string { return "journal-store" }

// HealthCheck reports the store's health. An in-memory store has no
// failure mode beyond process death, so it only honors cancellation.
func (s *Journal) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
