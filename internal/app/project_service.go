// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the in-memory
// ProjectState. It validates form input, logs, and records board metrics;
// the state container stays free of those concerns.
type ProjectService struct {
	state   *state.ProjectState
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewProjectService creates a ProjectService. If metrics is nil, metric
// recording is skipped. A nil logger discards output.
func NewProjectService(ps *state.ProjectState, metrics *telemetry.Metrics, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		state:   ps,
		metrics: metrics,
		logger:  logger,
	}
}

// ListProjects returns projects in creation order, filtered by status when
// one is given.
func (s *ProjectService) ListProjects(ctx context.Context, status project.Status) ([]project.Project, error) {
	s.logger.DebugContext(ctx, "listing projects", slog.String("status", status.String()))

	if status != "" && !status.IsValid() {
		return nil, invalidStatus("status", status)
	}

	projects := s.state.Projects()
	if status == "" {
		return projects, nil
	}
	return project.Filter(projects, status), nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	s.logger.DebugContext(ctx, "fetching project", slog.String("id", id))

	p, ok := s.state.Project(id)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// AddProject validates the input and appends a new active project.
func (s *ProjectService) AddProject(ctx context.Context, in project.Input) (*project.Project, error) {
	s.logger.InfoContext(ctx, "adding project", slog.String("title", in.Title))

	if err := in.Validate(); err != nil {
		s.logger.InfoContext(ctx, "project input rejected",
			slog.String("operation", "AddProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	p := s.state.AddProject(in.Title, in.Description, in.People)

	if s.metrics != nil {
		s.metrics.ProjectsCreated.Add(ctx, 1)
	}
	s.logger.InfoContext(ctx, "project added",
		slog.String("id", p.ID),
		slog.Int("people", p.People),
	)

	return &p, nil
}

// UpdateStatus moves a project to status. Unknown IDs and unchanged statuses
// are silent no-ops.
func (s *ProjectService) UpdateStatus(ctx context.Context, id string, status project.Status) (bool, error) {
	if !status.IsValid() {
		return false, invalidStatus("status", status)
	}
	return s.commit(ctx, id, status), nil
}

// DropProject offers the payload to a fresh drop zone for the target list
// and commits it when the zone accepts it.
func (s *ProjectService) DropProject(ctx context.Context, target project.Status, dt *dragdrop.DataTransfer) (bool, error) {
	if !target.IsValid() {
		return false, invalidStatus("list", target)
	}

	zone := dragdrop.NewDropZone(target, func(id string, status project.Status) bool {
		return s.commit(ctx, id, status)
	})

	if !zone.DragOver(dt) {
		s.logger.InfoContext(ctx, "drop rejected",
			slog.String("operation", "DropProject"),
			slog.String("list", target.String()),
			slog.Any("types", dt.Types()),
		)
		return false, nil
	}
	return zone.Drop(dt), nil
}

// commit applies a status change to the state container, logging and
// counting real transitions.
func (s *ProjectService) commit(ctx context.Context, id string, status project.Status) bool {
	changed := s.state.UpdateProjectStatus(id, status)
	if !changed {
		s.logger.DebugContext(ctx, "status update ignored",
			slog.String("id", id),
			slog.String("status", status.String()),
		)
		return false
	}

	if s.metrics != nil {
		s.metrics.StatusTransitions.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrProjectStatus.String(status.String())),
		)
	}
	s.logger.InfoContext(ctx, "project status updated",
		slog.String("id", id),
		slog.String("status", status.String()),
	)
	return true
}

func invalidStatus(field string, status project.Status) error {
	return &domain.ValidationError{
		Fields: map[string]string{field: fmt.Sprintf("invalid: %q", status)},
	}
}
