// Package http is the board's inbound adapter: the server-rendered board,
// its drop targets, the JSON API boardctl calls and the health endpoints.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
)

// NewRouter mounts every board route behind middlewares, outermost first.
// Unknown routes and methods answer with a problem body like every other
// failure.
func NewRouter(
	board *handlers.BoardHandler,
	projects *handlers.ProjectHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, fmt.Errorf("%s: %w", req.URL.Path, dto.ErrNoRoute))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Get("/", board.Page)
	r.Post("/projects", board.SubmitProject)
	r.Get("/lists/{status}", board.List)
	r.Post("/lists/{status}/drop", board.Drop)

	r.Get("/api/v1/projects", projects.ListProjects)
	r.Post("/api/v1/projects", projects.CreateProject)
	r.Get("/api/v1/projects/{id}", projects.GetProject)
	r.Patch("/api/v1/projects/{id}/status", projects.UpdateStatus)
	return r
}
