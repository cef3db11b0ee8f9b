package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
)

// RequestIDFromContext returns the request id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CorrelationIDFromContext returns the correlation id set by CorrelationID,
// or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestID keeps an incoming X-Request-ID or assigns a new UUID, stores it
// in the request context and echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, requestIDKey, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID keeps an incoming X-Correlation-ID and otherwise reuses the
// request id, so it must run after RequestID. boardctl sends one
// correlation id per command, which ties together every drop of a single
// "move".
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, correlationIDKey, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func propagateID(header string, key ctxKey, fallback func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, id)))
		})
	}
}
