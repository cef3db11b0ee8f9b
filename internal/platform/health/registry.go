// Package health collects the board's readiness checks: the project state
// must be able to take its lock and the lists must have rendered.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/project-board/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the checks run on every readiness request.
type Registry struct {
	mu       sync.Mutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Checks registered under the same name report the
// last one's result.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every check concurrently so one stuck component costs the
// caller at most its own ctx deadline, and returns each result by name.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.Lock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.Unlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { errs[i] = c.HealthCheck(ctx) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// Check is a named function satisfying ports.HealthChecker.
type Check struct {
	name string
	fn   func(context.Context) error
}

var _ ports.HealthChecker = Check{}

// NewCheck names fn as a readiness check.
func NewCheck(name string, fn func(context.Context) error) Check {
	return Check{name: name, fn: fn}
}

// Name returns the check's name.
func (c Check) Name() string { return c.name }

// HealthCheck runs fn.
func (c Check) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
