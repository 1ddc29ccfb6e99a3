// Package plan stages unit actions for ordered execution with reverse
// compensation on failure.
//
// A Plan is built per operation and must not be shared between operations:
//
//	p := plan.New()
//	err := p.Add(
//	    plan.Step{Label: "mark published", Run: mark, Compensate: unmark},
//	    plan.Step{Label: "dispatch entry", Run: dispatch},
//	)
//	if err == nil {
//	    err = p.Commit(ctx)
//	}
//
// Commit runs steps in insertion order. When a step fails, the
// compensations of the already completed steps run in reverse order.
// Compensation errors are logged and do not affect the returned error.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when Add or Commit is called on a Plan
// that has already been committed.
var ErrAlreadyCommitted = errors.New("plan: already committed")

// ErrUnlabeledStep is returned by Add when a step has no label. Labels
// identify steps in error chains and compensation logs.
var ErrUnlabeledStep = errors.New("plan: step label is required")

// Step pairs a unit action with an optional compensating action. The
// compensation undoes Run's effect when a later step fails; steps whose
// effect needs no undoing leave Compensate nil.
type Step struct {
	Label      string
	Run        straitjacket.Action[straitjacket.Unit]
	Compensate straitjacket.Action[straitjacket.Unit]
}

// Plan is an ordered queue of steps executed by Commit. A Plan is
// single-use: once committed, no further steps can be staged and Commit
// cannot run again.
type Plan struct {
	mu        sync.Mutex
	steps     []Step
	committed bool
}

// New creates an empty Plan.
func New() *Plan {
	return &Plan{}
}

// Add validates and stages steps for later execution by Commit. Each
// step's Run action (and Compensate, when present) passes through
// straitjacket.Make, so a step whose action fails validation is rejected
// here rather than surfacing mid-commit after earlier steps already ran.
//
// Add is safe for concurrent use. It returns ErrAlreadyCommitted after
// Commit has been called.
func (p *Plan) Add(steps ...Step) error {
	for _, s := range steps {
		if s.Label == "" {
			return ErrUnlabeledStep
		}
		if _, err := straitjacket.Make(s.Run); err != nil {
			return fmt.Errorf("step %q: %w", s.Label, err)
		}
		if s.Compensate != nil {
			if _, err := straitjacket.Make(s.Compensate); err != nil {
				return fmt.Errorf("step %q compensation: %w", s.Label, err)
			}
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.committed {
		return ErrAlreadyCommitted
	}
	p.steps = append(p.steps, steps...)
	return nil
}

// Commit executes all staged steps in insertion order. If a step fails,
// the compensations of previously completed steps run in reverse order.
// Compensation errors are logged but do not affect the returned error,
// which wraps the failing step's error with its label.
//
// After Commit returns (success or failure) the Plan is committed and no
// further steps can be staged. The committed flag and the steps snapshot
// are captured under lock; execution happens without holding it.
//
// Returns ErrAlreadyCommitted if called more than once.
func (p *Plan) Commit(ctx context.Context) error {
	p.mu.Lock()
	if p.committed {
		p.mu.Unlock()
		return ErrAlreadyCommitted
	}
	p.committed = true
	steps := p.steps
	p.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, step := range steps {
		logger.InfoContext(ctx, "executing step",
			slog.String("operation", "Plan.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("label", step.Label),
		)

		if err := straitjacket.Call(ctx, step.Run); err != nil {
			logger.ErrorContext(ctx, "step failed, compensating",
				slog.String("operation", "Plan.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("label", step.Label),
				slog.Any("error", err),
			)
			compensate(ctx, steps, i-1, logger)
			return fmt.Errorf("executing %s: %w", step.Label, err)
		}
	}

	return nil
}

// compensate runs the compensations of steps 0..upTo (inclusive) in
// reverse order. Compensation errors are logged at ERROR level and do
// not stop the remaining compensations.
func compensate(ctx context.Context, steps []Step, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		step := steps[i]
		if step.Compensate == nil {
			continue
		}

		logger.InfoContext(ctx, "compensating step",
			slog.String("operation", "Plan.Commit"),
			slog.Int("step", i+1),
			slog.String("label", step.Label),
		)

		if err := straitjacket.Call(ctx, step.Compensate); err != nil {
			logger.ErrorContext(ctx, "compensation failed",
				slog.String("operation", "Plan.Commit"),
				slog.Int("step", i+1),
				slog.String("label", step.Label),
				slog.Any("error", err),
			)
		}
	}
}
