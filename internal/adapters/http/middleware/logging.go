package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// Logging logs the start and end of each request through a child logger that
// carries the request and correlation ids. The child is stored with
// logging.WithLogger, so the service logs of one drop or form submission
// share those fields. Health checks log at debug, 5xx completions at error.
// At debug level the request headers are logged with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			level := slog.LevelInfo
			if quietPath(r.URL.Path) {
				level = slog.LevelDebug
			}
			reqLogger.Log(ctx, level, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", headerAttrs(r.Header)...)
			}

			req := r.WithContext(ctx)
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, req)

			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", routePattern(req)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			}
			attrs = append(attrs, targetOf(req).logAttrs()...)
			reqLogger.LogAttrs(ctx, level, "request completed", attrs...)
		})
	}
}

// headerAttrs renders headers as attributes, replacing the values of
// logging.SensitiveHeaders.
func headerAttrs(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for name, values := range h {
		v := strings.Join(values, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}
