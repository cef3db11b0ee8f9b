package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/project-board/internal/adapters/http"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/views"
	"github.com/jsamuelsen11/project-board/internal/app"
	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockProjectService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	registry := mocks.NewMockHealthRegistry(t)

	bh := handlers.NewBoardHandler(svc, views.NewBoard("Project Board", state.New()))
	ph := handlers.NewProjectHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(bh, ph, hh, middlewares...), svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	want := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /",
		"POST /projects",
		"GET /lists/{status}",
		"POST /lists/{status}/drop",
		"GET /api/v1/projects",
		"POST /api/v1/projects",
		"GET /api/v1/projects/{id}",
		"PATCH /api/v1/projects/{id}/status",
	}

	var got []string
	err := chi.Walk(router.(chi.Routes), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	for _, route := range want {
		if !slices.Contains(got, route) {
			t.Errorf("route %s not registered; have %v", route, got)
		}
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, _, registry := newTestRouter(t, tag("recovery"), tag("request-id"), tag("logging"))
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if got := strings.Join(order, ","); got != "recovery,request-id,logging" {
		t.Errorf("middleware order = %s, want recovery,request-id,logging", got)
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().ListProjects(mock.Anything, project.Status("")).Return([]project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_DropThroughBoard(t *testing.T) {
	t.Parallel()

	ps := state.New()
	p := ps.AddProject("Launch", "Ship the board", 2)
	svc := app.NewProjectService(ps, nil, nil)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewBoardHandler(svc, views.NewBoard("Project Board", ps)),
		handlers.NewProjectHandler(svc),
		handlers.NewHealthHandler(registry),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/lists/finished/drop", strings.NewReader(p.ID))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("drop status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists/finished", nil))
	if !strings.Contains(rec.Body.String(), `id="`+p.ID+`"`) {
		t.Errorf("finished list does not show %s after drop", p.ID)
	}
}

func TestRouter_UnroutedRequestsGetProblems(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantType string
	}{
		{method: http.MethodGet, path: "/backlog", wantCode: http.StatusNotFound, wantType: dto.ProblemNoRoute},
		{method: http.MethodPut, path: "/api/v1/projects", wantCode: http.StatusMethodNotAllowed, wantType: dto.ProblemMethodNotAllowed},
		{method: http.MethodGet, path: "/lists/active/drop", wantCode: http.StatusMethodNotAllowed, wantType: dto.ProblemMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		if rec.Code != tt.wantCode {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
		}
		var p dto.Problem
		if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
			t.Fatalf("%s %s: decoding problem: %v", tt.method, tt.path, err)
		}
		if p.Type != tt.wantType || p.Instance != tt.path {
			t.Errorf("%s %s problem = %+v, want type %s", tt.method, tt.path, p, tt.wantType)
		}
	}
}
