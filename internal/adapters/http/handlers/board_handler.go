package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/views"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// BoardHandler serves the HTML board: the page, form submissions, list
// fragments and drops.
type BoardHandler struct {
	svc   ports.ProjectService
	board *views.Board
}

// NewBoardHandler creates a BoardHandler. The board's list views must be
// subscribed to the same state the service writes to.
func NewBoardHandler(svc ports.ProjectService, board *views.Board) *BoardHandler {
	return &BoardHandler{svc: svc, board: board}
}

// Page handles GET /.
func (h *BoardHandler) Page(w http.ResponseWriter, r *http.Request) {
	form := views.NewProjectForm(views.FormValues{}, "")
	templ.Handler(h.board.Page(form)).ServeHTTP(w, r)
}

// SubmitProject handles POST /projects. A valid project redirects back to
// the board; an invalid one re-renders the page with the alert and the
// submitted values.
func (h *BoardHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := r.ParseForm(); err != nil {
		dto.WriteProblem(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid form encoding"},
		})
		return
	}

	values := views.FormValues{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		People:      r.PostFormValue("people"),
	}

	_, err := h.svc.AddProject(r.Context(), project.Input{
		Title:       values.Title,
		Description: values.Description,
		People:      parsePeople(values.People),
	})
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrValidation):
		form := views.NewProjectForm(values, views.AlertInvalidInput)
		templ.Handler(h.board.Page(form), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
	default:
		dto.WriteProblem(w, r, err)
	}
}

// List handles GET /lists/{status}: the current fragment of one list.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r, "status")
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	list, ok := h.board.List(status)
	if !ok {
		dto.WriteProblem(w, r, fmt.Errorf("list %q: %w", status, domain.ErrNotFound))
		return
	}

	templ.Handler(list).ServeHTTP(w, r)
}

// Drop handles POST /lists/{status}/drop. The request's media type and body
// are the drag payload; the target list replays the gesture. Unknown ids are
// accepted as no-ops.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r, "status")
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	body, ok := readBody(w, r, maxDropBodyBytes)
	if !ok {
		return
	}

	mediaType := r.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}

	dt := dragdrop.NewDataTransfer()
	if mediaType != "" {
		dt.SetData(mediaType, strings.TrimSpace(string(body)))
	}

	ctx := logging.With(r.Context(), slog.String("list", status.String()))
	accepted, err := h.svc.DropProject(ctx, status, dt)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}
	if !accepted {
		dto.WriteProblem(w, r, fmt.Errorf("drop payload %q: %w", mediaType, dto.ErrUnsupportedMediaType))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parsePeople converts the people field. Anything that is not an integer
// becomes 0, which the form rules reject.
func parsePeople(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
