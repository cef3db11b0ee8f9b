// Package project defines the board's project entity, its status and the
// rules applied to user input before a project is created.
package project

import (
	"fmt"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/validation"
)

// Project is one card on the board. Status is the only field that changes
// after creation.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}

// Form rules. Bounds are exclusive, see package validation.
const (
	DescriptionMinLength = 5
	PeopleMin            = 1
	PeopleMax            = 4
)

const msgRequired = "is required"

// Input holds the user-entered fields of a new project.
type Input struct {
	Title       string
	Description string
	People      int
}

// Validate checks the input against the form rules.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (in *Input) Validate() error {
	fields := make(map[string]string)

	if !validation.Validate(in.titleRule()) {
		fields["title"] = msgRequired
	}
	if !validation.Validate(in.descriptionRule()) {
		fields["description"] = fmt.Sprintf("is required and must be longer than %d characters", DescriptionMinLength)
	}
	if !validation.Validate(in.peopleRule()) {
		fields["people"] = fmt.Sprintf("must be greater than %d and less than %d", PeopleMin, PeopleMax)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (in *Input) titleRule() validation.Validatable {
	return validation.Validatable{
		Value:    in.Title,
		Required: true,
	}
}

func (in *Input) descriptionRule() validation.Validatable {
	return validation.Validatable{
		Value:     in.Description,
		Required:  true,
		MinLength: validation.Length(DescriptionMinLength),
	}
}

func (in *Input) peopleRule() validation.Validatable {
	return validation.Validatable{
		Value:    in.People,
		Required: true,
		Min:      validation.Bound(PeopleMin),
		Max:      validation.Bound(PeopleMax),
	}
}

// Filter returns the projects with the given status, preserving order.
func Filter(projects []Project, status Status) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		if projects[i].Status == status {
			out = append(out, projects[i])
		}
	}
	return out
}
