// Package handlers provides HTTP request handlers for the board page, its
// JSON API, and health endpoints.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectHandler handles the JSON project API.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects[?status=].
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var status project.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := project.ParseStatus(raw)
		if err != nil {
			dto.WriteProblem(w, r, &domain.ValidationError{
				Fields: map[string]string{"status": err.Error()},
			})
			return
		}
		status = parsed
	}

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddProject(r.Context(), req.Input())
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateStatus handles PATCH /api/v1/projects/{id}/status. Unlike a drop,
// addressing an unknown project here is a 404.
func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logging.With(r.Context(), slog.String("project_id", id))

	var req dto.UpdateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.svc.UpdateStatus(ctx, id, req.ParsedStatus()); err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	p, err := h.svc.GetProject(ctx, id)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}
