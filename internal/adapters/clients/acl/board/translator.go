package board

import (
	"fmt"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// ToDomainProject converts a ProjectDTO to a domain Project. A status the
// client does not know is an error rather than a silently broken project.
func ToDomainProject(dto *ProjectDTO) (project.Project, error) {
	status, err := project.ParseStatus(dto.Status)
	if err != nil {
		return project.Project{}, fmt.Errorf("project %q: %w", dto.ID, err)
	}

	return project.Project{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		People:      dto.People,
		Status:      status,
	}, nil
}

// ToDomainProjectList converts a list response, preserving order.
func ToDomainProjectList(dto ProjectListResponseDTO) ([]project.Project, error) {
	projects := make([]project.Project, len(dto.Projects))
	for i := range dto.Projects {
		p, err := ToDomainProject(&dto.Projects[i])
		if err != nil {
			return nil, err
		}
		projects[i] = p
	}
	return projects, nil
}

// ToCreateProjectRequest converts user input to a create request body.
func ToCreateProjectRequest(in project.Input) CreateProjectRequestDTO {
	return CreateProjectRequestDTO{
		Title:       in.Title,
		Description: in.Description,
		People:      in.People,
	}
}

// ToUpdateStatusRequest converts a target status to a status update body.
func ToUpdateStatusRequest(status project.Status) UpdateStatusRequestDTO {
	return UpdateStatusRequestDTO{Status: status.String()}
}
