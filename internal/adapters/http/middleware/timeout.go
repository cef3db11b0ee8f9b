package middleware

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
)

// Timeout bounds a request to d. The handler runs with a deadline and
// writes into a buffer; if it has not returned by then the client gets a
// 504 problem response and later writes fail with http.ErrHandlerTimeout.
// A handler panic is re-raised on the serving goroutine so Recovery sees
// it. A non-positive d disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteProblem(w, r, fmt.Errorf("%s %s after %s: %w", r.Method, r.URL.Path, d, dto.ErrTimeout))
				}
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// to send it.
type bufferedResponse struct {
	header http.Header

	mu      sync.Mutex
	status  int
	body    bytes.Buffer
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

// copyTo must only be called after the handler returned.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	w.WriteHeader(cmp.Or(b.status, http.StatusOK))
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
