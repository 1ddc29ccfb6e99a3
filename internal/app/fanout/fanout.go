// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The application
// layer uses it to publish journal entries in batches without flooding
// the relay.
//
// The helper manages goroutines, a semaphore channel, and context
// cancellation, and nothing else. Work functions own their side effects
// and their cancellation checks.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of one item. Index is the item's position in
// the input slice, so callers can correlate failures back to their
// inputs after filtering.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Map executes fn for each item using at most limit concurrent
// goroutines and returns one Result per item, in input order.
//
// A goroutine still waiting for a semaphore slot when ctx is canceled
// records ctx.Err() for its item and never calls fn. Goroutines that
// already hold a slot run to completion; fn is responsible for honoring
// ctx internally if it supports cancellation.
//
// Map blocks until every goroutine finishes. It returns nil when items
// is empty. limit must be >= 1.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return nil
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Index: idx, Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Index: idx, Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Failed returns the results that carry an error, in input order.
func Failed[R any](results []Result[R]) []Result[R] {
	var failed []Result[R]
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
