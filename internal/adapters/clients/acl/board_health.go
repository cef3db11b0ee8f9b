package acl

import "context"

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry].
func (c *BoardClient) Name() string {
	return "board-api"
}

// HealthCheck reports the board's availability from the HTTP client's
// circuit breaker without making a request. A half-open breaker is
// degraded, an open one failing.
func (c *BoardClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
