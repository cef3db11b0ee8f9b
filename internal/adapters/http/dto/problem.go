package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// Transport-level failures that have no domain sentinel.
var (
	// ErrUnsupportedMediaType reports a request payload whose media type the
	// endpoint does not accept, such as a drop without a text/plain id.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrTimeout reports a request that ran past the server's write timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrNoRoute and ErrMethodNotAllowed report requests the router has no
	// handler for.
	ErrNoRoute          = errors.New("no such route")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ProblemContentType is the media type of every error body the board writes.
const ProblemContentType = "application/problem+json"

// Problem type references. Clients match on these rather than on status
// codes, which several problems share.
const (
	ProblemInvalidInput       = "/problems/invalid-input"
	ProblemUnsupportedPayload = "/problems/unsupported-drag-payload"
	ProblemProjectNotFound    = "/problems/project-not-found"
	ProblemConflict           = "/problems/conflict"
	ProblemForbidden          = "/problems/forbidden"
	ProblemBoardUnavailable   = "/problems/board-unavailable"
	ProblemTimeout            = "/problems/request-timeout"
	ProblemNoRoute            = "/problems/no-such-route"
	ProblemMethodNotAllowed   = "/problems/method-not-allowed"
)

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem is one rejected form or JSON field. Location is "body.<field>".
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

type problemKind struct {
	sentinel error
	status   int
	typ      string
	title    string
}

// problemKinds is checked in order; the first sentinel err wraps wins.
var problemKinds = []problemKind{
	{domain.ErrValidation, http.StatusBadRequest, ProblemInvalidInput, "Invalid project input"},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, ProblemUnsupportedPayload, "Unsupported drag payload"},
	{domain.ErrNotFound, http.StatusNotFound, ProblemProjectNotFound, "Project not found"},
	{domain.ErrConflict, http.StatusConflict, ProblemConflict, "Conflict"},
	{domain.ErrForbidden, http.StatusForbidden, ProblemForbidden, "Forbidden"},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, ProblemBoardUnavailable, "Board unavailable"},
	{ErrTimeout, http.StatusGatewayTimeout, ProblemTimeout, "Request timed out"},
	{ErrNoRoute, http.StatusNotFound, ProblemNoRoute, "No such route"},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, ProblemMethodNotAllowed, "Method not allowed"},
}

// NewProblem describes err for the request r. Errors outside the known kinds
// become an about:blank 500 whose detail does not leak err.
func NewProblem(r *http.Request, err error) Problem {
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Instance: r.URL.RequestURI(),
	}

	for _, k := range problemKinds {
		if errors.Is(err, k.sentinel) {
			p.Type, p.Title, p.Status, p.Detail = k.typ, k.title, k.status, err.Error()
			break
		}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = fieldProblems(verr.Fields)
	}
	return p
}

// WriteProblem writes err as an application/problem+json response.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", encErr))
	}
}

func fieldProblems(fields map[string]string) []FieldProblem {
	out := make([]FieldProblem, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldProblem{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldProblem) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}
