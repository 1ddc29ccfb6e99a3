// Package health provides a thread-safe health check registry for tracking
// the health of downstream dependencies. The registry is used by the readiness
// endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components.
//
// Checks run concurrently so probe latency is bounded by the slowest checker
// rather than the sum of all of them. Each check writes to its own slot and
// results merge in registration order, so a duplicate name keeps the last
// registered checker's result. The checker slice is copied under a read lock
// so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	type outcome struct {
		name string
		err  error
	}

	outcomes := make([]outcome, len(checkers))

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = outcome{name: c.Name(), err: c.HealthCheck(ctx)}
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for _, o := range outcomes {
		results[o.name] = o.err
	}
	return results
}
