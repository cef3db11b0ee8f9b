package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/views"
	"github.com/jsamuelsen11/project-board/internal/app"
	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/mocks"
)

// newBoard wires a real state, service and board the way the server does.
func newBoard(t *testing.T) (*handlers.BoardHandler, *state.ProjectState) {
	t.Helper()

	n := 0
	ps := state.New(state.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))
	board := views.NewBoard("Project Board", ps)
	svc := app.NewProjectService(ps, nil, nil)
	return handlers.NewBoardHandler(svc, board), ps
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func dropRequest(status, contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/lists/"+status+"/drop", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return withChiParams(req, map[string]string{"status": status})
}

func TestPage_RendersEmptyBoard(t *testing.T) {
	t.Parallel()
	h, _ := newBoard(t)

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="user-input"`, "ACTIVE PROJECTS", "FINISHED PROJECTS"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSubmitProject_ValidRedirects(t *testing.T) {
	t.Parallel()
	h, ps := newBoard(t)

	rec := httptest.NewRecorder()
	h.SubmitProject(rec, formRequest(url.Values{
		"title":       {"Launch"},
		"description": {"Ship the board"},
		"people":      {"2"},
	}))

	requireStatus(t, rec, http.StatusSeeOther)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
	if ps.Len() != 1 {
		t.Fatalf("state Len() = %d, want 1", ps.Len())
	}

	page := httptest.NewRecorder()
	h.Page(page, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(page.Body.String(), "Launch") {
		t.Error("page does not show the new project")
	}
}

func TestSubmitProject_InvalidKeepsValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "empty title", values: url.Values{"title": {""}, "description": {"Ship the board"}, "people": {"2"}}},
		{name: "short description", values: url.Values{"title": {"Launch"}, "description": {"12345"}, "people": {"2"}}},
		{name: "too many people", values: url.Values{"title": {"Launch"}, "description": {"Ship the board"}, "people": {"4"}}},
		{name: "people not a number", values: url.Values{"title": {"Launch"}, "description": {"Ship the board"}, "people": {"two"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, ps := newBoard(t)

			rec := httptest.NewRecorder()
			h.SubmitProject(rec, formRequest(tt.values))

			requireStatus(t, rec, http.StatusUnprocessableEntity)
			body := rec.Body.String()
			if !strings.Contains(body, views.AlertInvalidInput) {
				t.Errorf("response missing alert %q", views.AlertInvalidInput)
			}
			if !strings.Contains(body, `<script>alert("Invalid input!");</script>`) {
				t.Error("response missing blocking alert script")
			}
			if want := `value="` + tt.values.Get("people") + `"`; !strings.Contains(body, want) {
				t.Errorf("people value not kept, want %s", want)
			}
			if ps.Len() != 0 {
				t.Errorf("state Len() = %d, want 0", ps.Len())
			}
		})
	}
}

func TestSubmitProject_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockProjectService(t)
	svc.EXPECT().AddProject(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	h := handlers.NewBoardHandler(svc, views.NewBoard("Board", state.New()))

	rec := httptest.NewRecorder()
	h.SubmitProject(rec, formRequest(url.Values{"title": {"Launch"}, "description": {"Ship the board"}, "people": {"2"}}))

	requireStatus(t, rec, http.StatusInternalServerError)
}

func TestList_Fragment(t *testing.T) {
	t.Parallel()
	h, ps := newBoard(t)
	ps.AddProject("Launch", "Ship the board", 2)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/lists/active", nil), map[string]string{"status": "active"})
	h.List(rec, req)

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	if !strings.HasPrefix(body, `<section class="projects" id="active-projects"`) {
		t.Errorf("fragment = %q, want the active section", body)
	}
	if !strings.Contains(body, `id="p1"`) {
		t.Error("fragment missing project p1")
	}
}

func TestList_UnknownStatus(t *testing.T) {
	t.Parallel()
	h, _ := newBoard(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/lists/archived", nil), map[string]string{"status": "archived"})
	h.List(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDrop_MovesProjectBetweenLists(t *testing.T) {
	t.Parallel()
	h, ps := newBoard(t)
	ps.AddProject("Launch", "Ship the board", 2)

	rec := httptest.NewRecorder()
	h.Drop(rec, dropRequest("finished", "text/plain; charset=utf-8", "p1\n"))

	requireStatus(t, rec, http.StatusNoContent)
	p, _ := ps.Project("p1")
	if p.Status != project.StatusFinished {
		t.Fatalf("Status = %q, want %q", p.Status, project.StatusFinished)
	}

	active := httptest.NewRecorder()
	h.List(active, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/active", nil), map[string]string{"status": "active"}))
	if strings.Contains(active.Body.String(), `id="p1"`) {
		t.Error("active list still shows p1 after drop")
	}
	finished := httptest.NewRecorder()
	h.List(finished, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/finished", nil), map[string]string{"status": "finished"}))
	if !strings.Contains(finished.Body.String(), `id="p1"`) {
		t.Error("finished list does not show p1 after drop")
	}
}

func TestDrop_UnknownIDIsAccepted(t *testing.T) {
	t.Parallel()
	h, ps := newBoard(t)

	rec := httptest.NewRecorder()
	h.Drop(rec, dropRequest("finished", "text/plain", "ghost"))

	requireStatus(t, rec, http.StatusNoContent)
	if ps.Len() != 0 {
		t.Errorf("state Len() = %d, want 0", ps.Len())
	}
}

func TestDrop_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      string
		contentType string
		wantStatus  int
	}{
		{name: "incompatible payload type", status: "finished", contentType: "text/uri-list", wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing payload type", status: "finished", contentType: "", wantStatus: http.StatusUnsupportedMediaType},
		{name: "unknown list", status: "archived", contentType: "text/plain", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, ps := newBoard(t)
			ps.AddProject("Launch", "Ship the board", 2)

			rec := httptest.NewRecorder()
			h.Drop(rec, dropRequest(tt.status, tt.contentType, "p1"))

			requireStatus(t, rec, tt.wantStatus)
			p, _ := ps.Project("p1")
			if p.Status != project.StatusActive {
				t.Errorf("Status = %q, want unchanged %q", p.Status, project.StatusActive)
			}
		})
	}
}
