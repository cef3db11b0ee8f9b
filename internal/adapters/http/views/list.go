package views

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// Source is the observable the list views subscribe to.
type Source interface {
	AddListener(fn state.Listener[project.Project])
}

// ProjectList renders the projects of one status. It re-renders from
// scratch on each state notification; page handlers read the last result.
type ProjectList struct {
	status project.Status

	mu    sync.RWMutex
	items []Component
	out   fragment
}

var (
	_ Component = (*ProjectList)(nil)
	_ Host      = (*ProjectList)(nil)
)

// NewProjectList creates the list for status, subscribes it to src and
// renders it empty.
func NewProjectList(status project.Status, src Source) *ProjectList {
	l := &ProjectList{status: status}
	src.AddListener(l.renderProjects)
	l.RenderContent()
	return l
}

// Status returns the status this list shows.
func (l *ProjectList) Status() project.Status {
	return l.status
}

// ListID is the id of the list's <ul> element.
func (l *ProjectList) ListID() string {
	return string(l.status) + "-projects-list"
}

// Heading is the list title, e.g. "ACTIVE PROJECTS".
func (l *ProjectList) Heading() string {
	return strings.ToUpper(string(l.status)) + " PROJECTS"
}

// Len returns the number of cards currently mounted.
func (l *ProjectList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Attach appends the list to host.
func (l *ProjectList) Attach(host Host) {
	host.mount(l, false)
}

// RenderContent rebuilds the list section from the mounted cards.
func (l *ProjectList) RenderContent() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.out.set(func(b *strings.Builder) {
		b.WriteString(`<section class="projects" id="`)
		b.WriteString(esc(string(l.status)))
		b.WriteString(`-projects" data-status="`)
		b.WriteString(esc(string(l.status)))
		b.WriteString(`"><header><h2>`)
		b.WriteString(esc(l.Heading()))
		b.WriteString(`</h2></header><ul id="`)
		b.WriteString(esc(l.ListID()))
		b.WriteString(`">`)
		renderAll(context.Background(), b, l.items)
		b.WriteString(`</ul></section>`)
	})
}

// Render implements templ.Component.
func (l *ProjectList) Render(_ context.Context, w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.out.write(w)
}

func (l *ProjectList) mount(c Component, _ bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, c)
}

// renderProjects is the state listener: clear, mount a card per project of
// this status, rebuild.
func (l *ProjectList) renderProjects(projects []project.Project) {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()

	for _, p := range project.Filter(projects, l.status) {
		NewProjectItem(p).Attach(l)
	}
	l.RenderContent()
}
