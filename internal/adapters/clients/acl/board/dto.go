// Package board holds the wire representations of the board's JSON API as
// seen by clients, and their translation to domain types.
package board

// ProjectDTO matches the project resource returned by /api/v1/projects.
type ProjectDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

// ProjectListResponseDTO matches the list response of GET /api/v1/projects.
type ProjectListResponseDTO struct {
	Projects []ProjectDTO `json:"projects"`
	Count    int          `json:"count"`
}

// CreateProjectRequestDTO is the body of POST /api/v1/projects.
type CreateProjectRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// UpdateStatusRequestDTO is the body of PATCH /api/v1/projects/{id}/status.
type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// Problem types published by the board in ProblemDTO.Type.
const (
	ProblemInvalidInput       = "/problems/invalid-input"
	ProblemUnsupportedPayload = "/problems/unsupported-drag-payload"
	ProblemProjectNotFound    = "/problems/project-not-found"
	ProblemConflict           = "/problems/conflict"
	ProblemForbidden          = "/problems/forbidden"
	ProblemBoardUnavailable   = "/problems/board-unavailable"
	ProblemTimeout            = "/problems/request-timeout"
)

// ProblemDTO is the subset of the board's RFC 9457 error body clients read.
type ProblemDTO struct {
	Type   string            `json:"type"`
	Detail string            `json:"detail"`
	Errors []FieldProblemDTO `json:"errors"`
}

// FieldProblemDTO is one rejected field; Location is "body.<field>".
type FieldProblemDTO struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}
