package actions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
)

var errStoreDown = errors.New("store down")

// memStore is a minimal JournalStore fake backed by a map.
type memStore struct {
	entries   map[int64]domain.Entry
	nextID    int64
	failOn    string
	updateLog []int64
}

func newMemStore(entries ...domain.Entry) *memStore {
	s := &memStore{entries: make(map[int64]domain.Entry)}
	for _, e := range entries {
		s.entries[e.ID] = e
		if e.ID > s.nextID {
			s.nextID = e.ID
		}
	}
	return s
}

func (s *memStore) Insert(_ context.Context, e domain.Entry) (domain.Entry, error) {
	if s.failOn == "insert" {
		return domain.Entry{}, errStoreDown
	}
	s.nextID++
	e.ID = s.nextID
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	e.CreatedAt = now
	e.UpdatedAt = now
	s.entries[e.ID] = e
	return e, nil
}

func (s *memStore) Get(_ context.Context, id int64) (domain.Entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

func (s *memStore) List(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, e := range s.entries {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) Update(_ context.Context, e domain.Entry) (domain.Entry, error) {
	if s.failOn == "update" {
		return domain.Entry{}, errStoreDown
	}
	if _, ok := s.entries[e.ID]; !ok {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", e.ID, domain.ErrNotFound)
	}
	s.entries[e.ID] = e
	s.updateLog = append(s.updateLog, e.ID)
	return e, nil
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	if s.failOn == "delete" {
		return errStoreDown
	}
	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}
	delete(s.entries, id)
	return nil
}

// stubRelay records dispatches and revocations.
type stubRelay struct {
	dispatched  []int64
	revoked     []string
	dispatchErr error
	revokeErr   error
}

func (r *stubRelay) Dispatch(_ context.Context, e domain.Entry) (*domain.Dispatch, error) {
	if r.dispatchErr != nil {
		return nil, r.dispatchErr
	}
	r.dispatched = append(r.dispatched, e.ID)
	return &domain.Dispatch{
		ID:      fmt.Sprintf("d-%d", e.ID),
		EntryID: e.ID,
		State:   domain.DispatchQueued,
		SentAt:  time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC),
	}, nil
}

func (r *stubRelay) Revoke(_ context.Context, dispatchID string) error {
	if r.revokeErr != nil {
		return r.revokeErr
	}
	r.revoked = append(r.revoked, dispatchID)
	return nil
}

func draftEntry(id int64) domain.Entry {
	return domain.Entry{
		ID:     id,
		Title:  fmt.Sprintf("entry %d", id),
		Body:   "body text",
		Tags:   []string{"log"},
		Status: domain.StatusDraft,
	}
}

func publishedEntry(id int64, dispatchID string) domain.Entry {
	e := draftEntry(id)
	e.Status = domain.StatusPublished
	at := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)
	e.PublishedAt = &at
	e.DispatchID = dispatchID
	return e
}

func TestActionValidation(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	relay := &stubRelay{}

	tests := []struct {
		name   string
		action straitjacket.Validator
		want   []string
	}{
		{
			name:   "record entry with no store and bad entry",
			action: RecordEntry{Entry: domain.Entry{Status: domain.StatusDraft}},
			want: []string{
				"journal store is required",
				"title is required",
				"body is required",
			},
		},
		{
			name:   "amend entry with zero id",
			action: AmendEntry{Journal: store, Title: "t", Body: "b"},
			want:   []string{"entry id must be positive"},
		},
		{
			name:   "scrub entry ready",
			action: ScrubEntry{Journal: store, EntryID: 1},
			want:   nil,
		},
		{
			name:   "mark published without timestamp",
			action: MarkPublished{Journal: store, EntryID: 1},
			want:   []string{"publication time is required"},
		},
		{
			name:   "dispatch entry without relay",
			action: DispatchEntry{Journal: store, EntryID: 1},
			want:   []string{"relay client is required"},
		},
		{
			name:   "revoke dispatch ready",
			action: RevokeDispatch{Journal: store, Relay: relay, EntryID: 2},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.action.Validate()
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Validate()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordEntryStoresDraft(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	in := domain.Entry{
		Title:      "smuggled state",
		Body:       "should be normalized away",
		Status:     domain.StatusPublished,
		DispatchID: "d-99",
	}

	a, err := straitjacket.Make(RecordEntry{Journal: store, Entry: in})
	if err != nil {
		t.Fatalf("Make() error = %v", err)
	}

	var got domain.Entry
	err = straitjacket.CallWith(context.Background(), a, func(out EntryRecorded) error {
		got = out.Entry
		return nil
	})
	if err != nil {
		t.Fatalf("CallWith() error = %v", err)
	}

	if got.ID != 1 {
		t.Errorf("ID = %d, want 1", got.ID)
	}
	if got.Status != domain.StatusDraft {
		t.Errorf("Status = %q, want draft regardless of input", got.Status)
	}
	if got.DispatchID != "" {
		t.Errorf("DispatchID = %q, want cleared", got.DispatchID)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not assigned by the store")
	}
}

func TestAmendEntry(t *testing.T) {
	t.Parallel()

	t.Run("amends a draft", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(draftEntry(1))
		a := straitjacket.MustMake(AmendEntry{
			Journal: store, EntryID: 1,
			Title: "revised", Body: "new body", Tags: []string{"rework"},
		})

		var got domain.Entry
		err := straitjacket.CallWith(context.Background(), a, func(out EntryAmended) error {
			got = out.Entry
			return nil
		})
		if err != nil {
			t.Fatalf("CallWith() error = %v", err)
		}
		if got.Title != "revised" || got.Body != "new body" {
			t.Errorf("amended entry = %+v", got)
		}
	})

	t.Run("rejects published entries", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, "d-1"))
		a := straitjacket.MustMake(AmendEntry{
			Journal: store, EntryID: 1, Title: "revised", Body: "new body",
		})

		err := straitjacket.CallWith(context.Background(), a, func(EntryAmended) error { return nil })
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		a := straitjacket.MustMake(AmendEntry{
			Journal: store, EntryID: 9, Title: "revised", Body: "new body",
		})

		err := straitjacket.CallWith(context.Background(), a, func(EntryAmended) error { return nil })
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestScrubEntry(t *testing.T) {
	t.Parallel()

	t.Run("deletes a draft", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(draftEntry(1))
		a := straitjacket.MustMake(ScrubEntry{Journal: store, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if _, ok := store.entries[1]; ok {
			t.Error("entry still present after scrub")
		}
	})

	t.Run("refuses published entries", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, "d-1"))
		a := straitjacket.MustMake(ScrubEntry{Journal: store, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})
}

func TestMarkPublishedAndUnmark(t *testing.T) {
	t.Parallel()

	store := newMemStore(draftEntry(1))
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	mark := straitjacket.MustMake(MarkPublished{Journal: store, EntryID: 1, At: at})
	if err := straitjacket.Call(context.Background(), mark); err != nil {
		t.Fatalf("Call(MarkPublished) error = %v", err)
	}

	e := store.entries[1]
	if e.Status != domain.StatusPublished {
		t.Errorf("Status = %q, want published", e.Status)
	}
	if e.PublishedAt == nil || !e.PublishedAt.Equal(at) {
		t.Errorf("PublishedAt = %v, want %v", e.PublishedAt, at)
	}

	// publishing twice conflicts
	again := straitjacket.MustMake(MarkPublished{Journal: store, EntryID: 1, At: at})
	if err := straitjacket.Call(context.Background(), again); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second publish error = %v, want ErrConflict", err)
	}

	unmark := straitjacket.MustMake(UnmarkPublished{Journal: store, EntryID: 1})
	if err := straitjacket.Call(context.Background(), unmark); err != nil {
		t.Fatalf("Call(UnmarkPublished) error = %v", err)
	}

	e = store.entries[1]
	if e.Status != domain.StatusDraft || e.PublishedAt != nil || e.DispatchID != "" {
		t.Errorf("entry after unmark = %+v, want pristine draft", e)
	}
}

func TestDispatchEntry(t *testing.T) {
	t.Parallel()

	t.Run("dispatches and persists the id", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, ""))
		relay := &stubRelay{}
		a := straitjacket.MustMake(DispatchEntry{Journal: store, Relay: relay, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if len(relay.dispatched) != 1 || relay.dispatched[0] != 1 {
			t.Errorf("dispatched = %v, want [1]", relay.dispatched)
		}
		if store.entries[1].DispatchID != "d-1" {
			t.Errorf("DispatchID = %q, want d-1", store.entries[1].DispatchID)
		}
	})

	t.Run("refuses unpublished entries", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(draftEntry(1))
		a := straitjacket.MustMake(DispatchEntry{Journal: store, Relay: &stubRelay{}, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})

	t.Run("relay errors pass through unmodified", func(t *testing.T) {
		t.Parallel()

		relayDown := fmt.Errorf("relay: %w", domain.ErrUnavailable)
		store := newMemStore(publishedEntry(1, ""))
		a := straitjacket.MustMake(DispatchEntry{
			Journal: store, Relay: &stubRelay{dispatchErr: relayDown}, EntryID: 1,
		})

		if err := straitjacket.Call(context.Background(), a); err != relayDown {
			t.Errorf("error = %v, want the relay error unmodified", err)
		}
	})
}

func TestRevokeDispatch(t *testing.T) {
	t.Parallel()

	t.Run("revokes and clears", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, "d-1"))
		relay := &stubRelay{}
		a := straitjacket.MustMake(RevokeDispatch{Journal: store, Relay: relay, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if len(relay.revoked) != 1 || relay.revoked[0] != "d-1" {
			t.Errorf("revoked = %v, want [d-1]", relay.revoked)
		}
		if store.entries[1].DispatchID != "" {
			t.Errorf("DispatchID = %q, want cleared", store.entries[1].DispatchID)
		}
	})

	t.Run("no dispatch recorded is a no-op", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, ""))
		relay := &stubRelay{}
		a := straitjacket.MustMake(RevokeDispatch{Journal: store, Relay: relay, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if len(relay.revoked) != 0 {
			t.Errorf("revoked = %v, want none", relay.revoked)
		}
	})

	t.Run("tolerates an already-gone dispatch", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, "d-1"))
		relay := &stubRelay{revokeErr: fmt.Errorf("dispatch d-1: %w", domain.ErrNotFound)}
		a := straitjacket.MustMake(RevokeDispatch{Journal: store, Relay: relay, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v, want nil for a vanished dispatch", err)
		}
		if store.entries[1].DispatchID != "" {
			t.Error("DispatchID not cleared")
		}
	})
}

func TestMarkRetracted(t *testing.T) {
	t.Parallel()

	t.Run("retracts a published entry", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(publishedEntry(1, ""))
		a := straitjacket.MustMake(MarkRetracted{Journal: store, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		e := store.entries[1]
		if e.Status != domain.StatusRetracted {
			t.Errorf("Status = %q, want retracted", e.Status)
		}
		if e.PublishedAt == nil {
			t.Error("PublishedAt cleared, want kept as history")
		}
	})

	t.Run("refuses drafts", func(t *testing.T) {
		t.Parallel()

		store := newMemStore(draftEntry(1))
		a := straitjacket.MustMake(MarkRetracted{Journal: store, EntryID: 1})

		if err := straitjacket.Call(context.Background(), a); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})
}
