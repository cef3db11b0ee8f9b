package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a 500 problem response and an error
// log with the stack. A listener panicking while the board state notifies
// ends up here. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly. A panic after the headers were sent is only logged.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []slog.Attr{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
				}
				attrs = append(attrs, targetOf(r).logAttrs()...)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rec.wroteHeader {
					dto.WriteProblem(rec, r, fmt.Errorf("panic: %v", v))
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
