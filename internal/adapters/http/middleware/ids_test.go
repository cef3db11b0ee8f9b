package middleware_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

func TestRequestAndCorrelationIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   http.Header
		wantReq  string
		wantCorr string
	}{
		{
			name:     "both from boardctl",
			header:   http.Header{"X-Request-Id": {"req-1"}, "X-Correlation-Id": {"move-7"}},
			wantReq:  "req-1",
			wantCorr: "move-7",
		},
		{
			name:     "correlation falls back to request id",
			header:   http.Header{"X-Request-Id": {"req-2"}},
			wantReq:  "req-2",
			wantCorr: "req-2",
		},
		{
			name: "browser request gets a generated id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotReq = middleware.RequestIDFromContext(r.Context())
				gotCorr = middleware.CorrelationIDFromContext(r.Context())
			})
			h := middleware.RequestID()(middleware.CorrelationID()(next))

			rec := serve(t, h, http.MethodPost, "/lists/finished/drop", tt.header)

			if tt.wantReq == "" {
				if _, err := uuid.Parse(gotReq); err != nil {
					t.Errorf("generated request id %q is not a UUID: %v", gotReq, err)
				}
				tt.wantReq, tt.wantCorr = gotReq, gotReq
			}
			if gotReq != tt.wantReq || gotCorr != tt.wantCorr {
				t.Errorf("ids = (%q, %q), want (%q, %q)", gotReq, gotCorr, tt.wantReq, tt.wantCorr)
			}
			if got := rec.Header().Get("X-Request-ID"); got != tt.wantReq {
				t.Errorf("X-Request-ID response header = %q, want %q", got, tt.wantReq)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != tt.wantCorr {
				t.Errorf("X-Correlation-ID response header = %q, want %q", got, tt.wantCorr)
			}
		})
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(t.Context()); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(t.Context()); id != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", id)
	}
}
