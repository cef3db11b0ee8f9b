package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// BoardClient defines the client port for a running board's HTTP API.
// Implemented by the ACL adapter; called by the CLI.
type BoardClient interface {
	// ListProjects returns projects, optionally filtered by status.
	ListProjects(ctx context.Context, status project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)

	// CreateProject creates a project and returns it with its assigned ID.
	// Returns domain.ErrValidation if the board rejects the input.
	CreateProject(ctx context.Context, in project.Input) (*project.Project, error)

	// UpdateStatus moves a project and returns its current state.
	// Returns domain.ErrNotFound if the project does not exist.
	UpdateStatus(ctx context.Context, id string, status project.Status) (*project.Project, error)

	// Drop posts a drag payload to the drop endpoint of the target list.
	// Returns domain.ErrValidation if the list refuses the payload type.
	Drop(ctx context.Context, target project.Status, dt *dragdrop.DataTransfer) error
}
