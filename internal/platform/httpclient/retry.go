package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// policy is the retry schedule: attempt n waits first*factor^(n-1), capped
// at ceiling, then shifted by up to a quarter either way.
type policy struct {
	attempts int
	first    time.Duration
	ceiling  time.Duration
	factor   float64
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		attempts: max(cfg.MaxAttempts, 1),
		first:    cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   max(cfg.Multiplier, 1),
	}
}

// delay is the wait before retry n, counting the first retry as 1.
func (p policy) delay(n int) time.Duration {
	d := float64(p.first)
	for range n - 1 {
		d *= p.factor
		if d >= float64(p.ceiling) {
			break
		}
	}
	d = min(d, float64(p.ceiling))
	return time.Duration(d * (0.75 + rand.Float64()/2)) //nolint:gosec // jitter
}

// send performs req, replaying it while the board answers with a retryable
// status or the transport fails, for as many attempts as req allows.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := snapshot(req)
	if err != nil {
		return nil, err
	}
	attempts := c.retry.attempts
	if !replayable(ctx, req) {
		attempts = 1
	}

	var failure error
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, failure); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			failure = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		case n == attempts-1:
			return resp, fmt.Errorf("%s answered %d after %d attempts", c.name, resp.StatusCode, attempts)
		default:
			failure = fmt.Errorf("%s answered %d", c.name, resp.StatusCode)
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}
	return nil, failure
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, cause error) error {
	wait := c.retry.delay(n)
	logging.FromContext(ctx).WarnContext(ctx, "retrying board api call",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", n+1),
		slog.Duration("backoff", wait),
		slog.Any("error", cause))

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func replayable(ctx context.Context, req *http.Request) bool {
	if marked, _ := ctx.Value(idempotentKey).(bool); marked {
		return true
	}
	return req.Method != http.MethodPost
}

// snapshot drains req's body so every attempt can send the same bytes.
func snapshot(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
