package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
)

// Requester performs one board API call: it encodes the body, tags the
// request with a fresh request id, checks the status and decodes the reply
// or translates the problem the board sent back.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester sends through client. A nil logger discards.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends in as JSON, when non-nil, and decodes the reply into out, when
// non-nil, provided the board answers with want.
func (r *Requester) Do(ctx context.Context, method, path string, want int, in, out any) error {
	if in == nil {
		return r.roundTrip(ctx, method, path, "", nil, want, out)
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", method, path, err)
	}
	return r.roundTrip(ctx, method, path, "application/json", raw, want, out)
}

// Send posts payload as mediaType. Drops use it since their body is the
// drag data itself.
func (r *Requester) Send(ctx context.Context, path, mediaType string, payload []byte, want int) error {
	return r.roundTrip(ctx, http.MethodPost, path, mediaType, payload, want, nil)
}

// HealthCheck reports the client's breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) roundTrip(ctx context.Context, method, path, mediaType string, payload []byte, want int, out any) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	ctx = httpclient.WithRequestID(ctx, uuid.NewString())
	req, err := http.NewRequestWithContext(ctx, method, r.client.URL(path), body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json, application/problem+json")
	if mediaType != "" {
		req.Header.Set("Content-Type", mediaType)
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing board api response", slog.Any("error", cerr))
			}
		}()
	}
	switch {
	case resp != nil && resp.StatusCode != want:
		// Retries that ran out still leave the board's last answer.
		r.logger.DebugContext(ctx, "board api refused call",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want))
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "board api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	case out != nil:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s: %w", method, path, err)
		}
	}
	return nil
}
