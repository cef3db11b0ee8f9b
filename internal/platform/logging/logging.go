// Package logging builds the board's slog loggers and carries them through
// request contexts.
//
// Handlers and services never construct loggers. They take the one the
// request middleware stored in the context, which already carries the
// request and correlation ids, and narrow it with With:
//
//	ctx = logging.With(ctx, slog.String("project_id", id))
//	logging.FromContext(ctx).ErrorContext(ctx, "move failed",
//	    slog.String("operation", "UpdateStatus"), slog.Any("error", err))
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing JSON to w, or logfmt when format is "text".
// level is one of debug, info, warn or error in any case; anything else
// logs at info. Debug output includes source locations. Credentials are
// masked whatever the level.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: masker(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// With narrows the context logger by args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
