package dto

import (
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Input converts the request to the form input the service validates.
func (r *CreateProjectRequest) Input() project.Input {
	return project.Input{
		Title:       r.Title,
		Description: r.Description,
		People:      r.People,
	}
}

// Validate applies the project form rules.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	in := r.Input()
	return in.Validate()
}

// UpdateStatusRequest represents the JSON body for moving a project.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the status is a known status.
// Returns a *domain.ValidationError if it is not.
func (r *UpdateStatusRequest) Validate() error {
	if _, err := project.ParseStatus(r.Status); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"status": err.Error()}}
	}
	return nil
}

// ParsedStatus returns the validated status. Call Validate first.
func (r *UpdateStatusRequest) ParsedStatus() project.Status {
	return project.Status(r.Status)
}
