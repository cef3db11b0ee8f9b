package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/acl/board"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BoardClient   = (*BoardClient)(nil)
	_ ports.HealthChecker = (*BoardClient)(nil)
)

const projectsPath = "/api/v1/projects"

// BoardClient is the outbound adapter for a running board. It implements
// [ports.BoardClient] over the board's JSON API and its drop endpoints.
//
// Wire types are translated by package [board]; error responses are
// mapped to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] adds circuit breaking, retries, rate limiting and
// tracing to every call.
type BoardClient struct {
	req *Requester
}

// NewBoardClient creates a BoardClient. The client's BaseURL should point
// at the board server root (e.g. "http://localhost:8080").
func NewBoardClient(client *httpclient.Client, logger *slog.Logger) *BoardClient {
	return &BoardClient{req: NewRequester(client, logger)}
}

// ListProjects fetches GET /api/v1/projects, filtered by status when one
// is given.
func (c *BoardClient) ListProjects(ctx context.Context, status project.Status) ([]project.Project, error) {
	path := projectsPath
	if status != "" {
		path += "?" + url.Values{"status": {status.String()}}.Encode()
	}

	var dto board.ProjectListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return board.ToDomainProjectList(dto)
}

// GetProject fetches GET /api/v1/projects/{id}.
// Returns [domain.ErrNotFound] if the board has no such project.
func (c *BoardClient) GetProject(ctx context.Context, id string) (*project.Project, error) {
	var dto board.ProjectDTO
	if err := c.req.Do(ctx, http.MethodGet, projectPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return toProject(&dto)
}

// CreateProject sends POST /api/v1/projects. Creation is not idempotent,
// so the request is never retried. Returns [domain.ErrValidation] with the
// board's field errors if the input is rejected.
func (c *BoardClient) CreateProject(ctx context.Context, in project.Input) (*project.Project, error) {
	var dto board.ProjectDTO
	err := c.req.Do(ctx, http.MethodPost, projectsPath, http.StatusCreated, board.ToCreateProjectRequest(in), &dto)
	if err != nil {
		return nil, err
	}
	return toProject(&dto)
}

// UpdateStatus sends PATCH /api/v1/projects/{id}/status.
// Returns [domain.ErrNotFound] if the board has no such project.
func (c *BoardClient) UpdateStatus(ctx context.Context, id string, status project.Status) (*project.Project, error) {
	var dto board.ProjectDTO
	err := c.req.Do(ctx, http.MethodPatch, projectPath(id)+"/status", http.StatusOK, board.ToUpdateStatusRequest(status), &dto)
	if err != nil {
		return nil, err
	}
	return toProject(&dto)
}

// Drop posts the first payload of dt to POST /lists/{status}/drop with its
// media type as Content-Type, the same request the board page sends when a
// card is dropped. Setting a status is idempotent, so the request may be
// retried. An empty transfer or a payload the list refuses returns
// [domain.ErrValidation].
func (c *BoardClient) Drop(ctx context.Context, target project.Status, dt *dragdrop.DataTransfer) error {
	types := dt.Types()
	if len(types) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"payload": "is required"}}
	}
	mediaType := types[0]

	path := "/lists/" + url.PathEscape(target.String()) + "/drop"
	err := c.req.Send(httpclient.WithIdempotent(ctx), path, mediaType, []byte(dt.GetData(mediaType)), http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("drop on %s: %w", target, err)
	}
	return nil
}

func projectPath(id string) string {
	return projectsPath + "/" + url.PathEscape(id)
}

func toProject(dto *board.ProjectDTO) (*project.Project, error) {
	p, err := board.ToDomainProject(dto)
	if err != nil {
		return nil, fmt.Errorf("translating board response: %w", err)
	}
	return &p, nil
}
