// Package health tracks the backing services the catalog depends on
// (Postgres, Redis, the storage circuit breaker) for the readiness probe.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// maxConcurrentChecks bounds how many probes run at once.
const maxConcurrentChecks = 4

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe [ports.HealthRegistry]. Checkers are registered
// during startup and probed concurrently on every readiness request.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll probes every checker concurrently and returns the results keyed
// by checker name. A slow probe does not delay the others beyond ctx.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	var (
		resultsMu sync.Mutex
		results   = make(map[string]error, len(checkers))
		g         errgroup.Group
	)
	g.SetLimit(maxConcurrentChecks)

	for _, c := range checkers {
		g.Go(func() error {
			err := c.HealthCheck(ctx)
			resultsMu.Lock()
			results[c.Name()] = err
			resultsMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
