package ports

import "context"

// HealthChecker is a component the readiness endpoint asks about: the
// board state, the rendered views, or boardctl's client for the board API.
type HealthChecker interface {
	// Name keys the component in readiness output, e.g. "board-state".
	Name() string
	// HealthCheck returns nil when the component can serve, and must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry is the set of checks behind GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and returns its error by name; nil means
	// ready.
	CheckAll(ctx context.Context) map[string]error
}
