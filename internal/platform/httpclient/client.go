// Package httpclient is the outbound side of boardctl: every call to the
// board API passes through a circuit breaker, a token bucket, a client span
// and a bounded retry loop before it reaches the network.
//
//	c := httpclient.New(&cfg.Client, "board-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.URL("/api/v1/projects"), nil)
//	resp, err := c.Do(ctx, req)
//
// Every method but POST is replayed on 5xx, 429 and transport errors. A
// POST is replayed only when its context is marked with WithIdempotent,
// which is how a drop onto a list is sent.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

// Header names carrying the caller's ids to the board.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
	idempotentKey
)

// WithRequestID makes Do send id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID makes Do send id as X-Correlation-ID. boardctl sets one
// per command so a bulk move shows up as a single thread in the board's logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// WithIdempotent marks requests made with ctx as safe to replay whatever
// their method.
func WithIdempotent(ctx context.Context) context.Context {
	return context.WithValue(ctx, idempotentKey, true)
}

// Client calls the board API.
type Client struct {
	http    *http.Client
	base    *url.URL
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	retry   policy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client from cfg. name labels spans, metrics and health
// output. A nil metrics disables recording. An unparsable BaseURL is
// reported by the first Do.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		name:    name,
		retry:   newPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
		c.base = u
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	cb := cfg.CircuitBreaker
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(max(cb.HalfOpenLimit, 1)), //nolint:gosec // bounded by config validation
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= max(cb.MaxFailures, 1)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("board api breaker changed state",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c
}

// Do sends req to the board. A response is returned open whenever one was
// received, including alongside an error when retries ran out on a 5xx or
// 429; the caller closes its body. Breaker rejections and transport
// failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	if c.base == nil {
		return nil, errors.New("httpclient: base URL is not an absolute URL")
	}

	var last *http.Response
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		stampIDs(ctx, req)

		ctx, span := otel.Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				telemetry.AttrHTTPMethod.String(req.Method),
				telemetry.AttrPeerService.String(c.name),
			))
		defer span.End()
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		r, err := c.send(ctx, req.WithContext(ctx))
		last = r
		if r != nil {
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(r.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return r, err
	})
	if resp == nil {
		resp = last
	}

	c.record(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// URL appends path, which may carry an already encoded query, to the base
// URL.
func (c *Client) URL(path string) string {
	if c.base == nil {
		return path
	}
	p, query, _ := strings.Cut(path, "?")
	u := c.base.JoinPath(p)
	u.RawQuery = query
	return u.String()
}

// Name identifies the board API in health output.
func (c *Client) Name() string { return c.name }

// HealthCheck reports the breaker's view of the board API without sending
// anything.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in state %v", c.name, state)
	}
}

func stampIDs(ctx context.Context, req *http.Request) {
	for key, header := range map[ctxKey]string{
		requestIDKey:     HeaderRequestID,
		correlationIDKey: HeaderCorrelationID,
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(header, id)
		}
	}
}

func (c *Client) record(ctx context.Context, method string, resp *http.Response, err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
