// Package app provides application services that orchestrate use cases by
// coordinating domain actions with infrastructure through port interfaces.
//
// Reads go straight to the store. Every write is expressed as an action:
// the service builds the action value, runs it through straitjacket.Make,
// and invokes it with Call or CallWith. Multi-step writes are staged on a
// plan.Plan, which compensates completed steps when a later one fails.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/app/actions"
	"github.com/mbbx6spp/straitjacket/internal/app/fanout"
	"github.com/mbbx6spp/straitjacket/internal/app/plan"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/platform/telemetry"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// defaultBatchWorkers bounds concurrent publishes in PublishBatch when no
// explicit worker count is configured.
const defaultBatchWorkers = 4

// Compile-time check that JournalService implements ports.JournalService.
var _ ports.JournalService = (*JournalService)(nil)

// JournalService implements ports.JournalService. It owns no business
// rules itself: entity rules live in the domain package, write semantics
// live in the actions package, and this service wires them to the store
// and relay ports with logging and metrics around each operation.
type JournalService struct {
	journal      ports.JournalStore
	relay        ports.RelayClient
	logger       *slog.Logger
	metrics      *telemetry.Metrics
	batchWorkers int
	now          func() time.Time
}

// NewJournalService creates a JournalService. A nil logger is replaced
// with a no-op logger and a nil metrics handle disables instrumentation.
// batchWorkers bounds PublishBatch concurrency; values below 1 fall back
// to defaultBatchWorkers.
func NewJournalService(journal ports.JournalStore, relay ports.RelayClient, logger *slog.Logger, metrics *telemetry.Metrics, batchWorkers int) *JournalService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if batchWorkers < 1 {
		batchWorkers = defaultBatchWorkers
	}
	return &JournalService{
		journal:      journal,
		relay:        relay,
		logger:       logger,
		metrics:      metrics,
		batchWorkers: batchWorkers,
		now:          time.Now,
	}
}

// ListEntries returns entries matching the filter, ordered by ID.
func (s *JournalService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	s.logger.InfoContext(ctx, "listing entries",
		slog.String("status", string(filter.Status)),
		slog.String("tag", filter.Tag),
	)

	entries, err := s.journal.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list entries",
			slog.String("operation", "ListEntries"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return entries, nil
}

// GetEntry returns a single entry by ID.
func (s *JournalService) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	s.logger.InfoContext(ctx, "fetching entry", slog.Int64("id", id))

	entry, err := s.journal.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch entry",
			slog.String("operation", "GetEntry"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &entry, nil
}

// CreateEntry records a new draft entry and returns the stored entity.
func (s *JournalService) CreateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	s.logger.InfoContext(ctx, "recording entry", slog.String("title", entry.Title))

	draft := entry.Clone()
	draft.Status = domain.StatusDraft

	a, err := straitjacket.Make(actions.RecordEntry{Journal: s.journal, Entry: draft})
	if err != nil {
		return nil, err
	}

	var created domain.Entry
	start := time.Now()
	err = straitjacket.CallWith(ctx, a, func(out actions.EntryRecorded) error {
		created = out.Entry
		return nil
	})
	s.observe(ctx, "RecordEntry", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record entry",
			slog.String("operation", "CreateEntry"),
			slog.String("title", entry.Title),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &created, nil
}

// UpdateEntry amends an existing entry's title, body, and tags.
func (s *JournalService) UpdateEntry(ctx context.Context, id int64, entry *domain.Entry) (*domain.Entry, error) {
	s.logger.InfoContext(ctx, "amending entry", slog.Int64("id", id))

	a, err := straitjacket.Make(actions.AmendEntry{
		Journal: s.journal,
		EntryID: id,
		Title:   entry.Title,
		Body:    entry.Body,
		Tags:    entry.Tags,
	})
	if err != nil {
		return nil, err
	}

	var amended domain.Entry
	start := time.Now()
	err = straitjacket.CallWith(ctx, a, func(out actions.EntryAmended) error {
		amended = out.Entry
		return nil
	})
	s.observe(ctx, "AmendEntry", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to amend entry",
			slog.String("operation", "UpdateEntry"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &amended, nil
}

// DeleteEntry scrubs an entry from the journal.
func (s *JournalService) DeleteEntry(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "scrubbing entry", slog.Int64("id", id))

	a, err := straitjacket.Make(actions.ScrubEntry{Journal: s.journal, EntryID: id})
	if err != nil {
		return err
	}

	start := time.Now()
	err = straitjacket.Call(ctx, a)
	s.observe(ctx, "ScrubEntry", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to scrub entry",
			slog.String("operation", "DeleteEntry"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// PublishEntry marks an entry published and dispatches it to the relay.
// The status flip and the dispatch are committed as one plan: a failed
// dispatch unwinds the status flip before the error is returned.
func (s *JournalService) PublishEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	s.logger.InfoContext(ctx, "publishing entry", slog.Int64("id", id))

	p := plan.New()
	err := p.Add(
		plan.Step{
			Label:      "mark published",
			Run:        actions.MarkPublished{Journal: s.journal, EntryID: id, At: s.now().UTC()},
			Compensate: actions.UnmarkPublished{Journal: s.journal, EntryID: id},
		},
		plan.Step{
			Label: "dispatch entry",
			Run:   actions.DispatchEntry{Journal: s.journal, Relay: s.relay, EntryID: id},
		},
	)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = p.Commit(ctx)
	s.observe(ctx, "PublishEntry", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish entry",
			slog.String("operation", "PublishEntry"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	published, err := s.journal.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &published, nil
}

// RetractEntry withdraws a published entry. The downstream dispatch is
// revoked first, then the entry is marked retracted locally.
func (s *JournalService) RetractEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	s.logger.InfoContext(ctx, "retracting entry", slog.Int64("id", id))

	p := plan.New()
	err := p.Add(
		plan.Step{
			Label: "revoke dispatch",
			Run:   actions.RevokeDispatch{Journal: s.journal, Relay: s.relay, EntryID: id},
		},
		plan.Step{
			Label: "mark retracted",
			Run:   actions.MarkRetracted{Journal: s.journal, EntryID: id},
		},
	)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = p.Commit(ctx)
	s.observe(ctx, "RetractEntry", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to retract entry",
			slog.String("operation", "RetractEntry"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	retracted, err := s.journal.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &retracted, nil
}

// PublishBatch publishes entries concurrently with partial success
// semantics. Each entry's publish runs its own plan; one entry's failure
// does not affect the others.
func (s *JournalService) PublishBatch(ctx context.Context, ids []int64) (*ports.BatchResult, error) {
	s.logger.InfoContext(ctx, "publishing batch", slog.Int("count", len(ids)))

	out := &ports.BatchResult{}
	if len(ids) == 0 {
		return out, nil
	}

	results := fanout.Map(ctx, s.batchWorkers, ids, func(ctx context.Context, id int64) (domain.Entry, error) {
		entry, err := s.PublishEntry(ctx, id)
		if err != nil {
			return domain.Entry{}, err
		}
		return *entry, nil
	})

	for _, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BatchError{EntryID: ids[r.Index], Err: r.Err})
			continue
		}
		out.Published = append(out.Published, r.Value)
	}

	s.logger.InfoContext(ctx, "batch publish complete",
		slog.Int("published", len(out.Published)),
		slog.Int("failed", len(out.Errors)),
	)
	return out, nil
}

// observe records one action invocation on the service metrics. A nil
// metrics handle disables recording.
func (s *JournalService) observe(ctx context.Context, action string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrAction.String(action),
		telemetry.AttrResult.String(result),
	)
	s.metrics.ActionInvokeTotal.Add(ctx, 1, attrs)
	s.metrics.ActionInvokeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}
