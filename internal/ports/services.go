package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// ProjectService defines the service port for board operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns projects in creation order. An empty status
	// returns every project.
	ListProjects(ctx context.Context, status project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)

	// AddProject validates the input and creates an active project.
	// Returns domain.ErrValidation if the input breaks the form rules.
	AddProject(ctx context.Context, in project.Input) (*project.Project, error)

	// UpdateStatus moves a project to status. Unknown IDs and unchanged
	// statuses are no-ops reported as changed == false, not errors.
	// Returns domain.ErrValidation if status is not a known status.
	UpdateStatus(ctx context.Context, id string, status project.Status) (bool, error)

	// DropProject runs one drag gesture onto the list for target: the payload
	// is offered to the list's drop zone and, when accepted, committed.
	// accepted is false when the payload type is incompatible.
	// Returns domain.ErrValidation if target is not a known status.
	DropProject(ctx context.Context, target project.Status, dt *dragdrop.DataTransfer) (bool, error)
}
