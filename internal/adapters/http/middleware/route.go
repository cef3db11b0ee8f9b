package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

// routePattern returns the chi route pattern matched for r, such as
// "/lists/{status}/drop". It is only complete after the router has served
// the request. Requests outside a chi router fall back to the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// boardTarget is the list and project a request addressed, read from the
// {status} and {id} route parameters once routing is done.
type boardTarget struct {
	list      string
	projectID string
}

func targetOf(r *http.Request) boardTarget {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return boardTarget{}
	}
	return boardTarget{
		list:      rctx.URLParam("status"),
		projectID: rctx.URLParam("id"),
	}
}

func (t boardTarget) logAttrs() []slog.Attr {
	var attrs []slog.Attr
	if t.list != "" {
		attrs = append(attrs, slog.String("list", t.list))
	}
	if t.projectID != "" {
		attrs = append(attrs, slog.String("project_id", t.projectID))
	}
	return attrs
}

func (t boardTarget) spanAttrs() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if t.list != "" {
		attrs = append(attrs, telemetry.AttrBoardList.String(t.list))
	}
	if t.projectID != "" {
		attrs = append(attrs, telemetry.AttrProjectID.String(t.projectID))
	}
	return attrs
}

// quietPath reports whether requests to path are logged at debug level.
// Orchestrators poll the health endpoints every few seconds.
func quietPath(path string) bool {
	return path == "/health/live" || path == "/health/ready"
}
