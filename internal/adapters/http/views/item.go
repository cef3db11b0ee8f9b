package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// ProjectItem renders one draggable project card. The element id is the
// project id, which the page script places in the drag payload.
type ProjectItem struct {
	project project.Project
	out     fragment
}

var _ Component = (*ProjectItem)(nil)

// NewProjectItem returns a rendered card for p.
func NewProjectItem(p project.Project) *ProjectItem {
	it := &ProjectItem{project: p}
	it.RenderContent()
	return it
}

// Persons is the team size line shown under the title.
func (it *ProjectItem) Persons() string {
	if it.project.People == 1 {
		return "1 person"
	}
	return strconv.Itoa(it.project.People) + " persons"
}

// Attach appends the card to host.
func (it *ProjectItem) Attach(host Host) {
	host.mount(it, false)
}

// RenderContent rebuilds the card markup.
func (it *ProjectItem) RenderContent() {
	it.out.set(func(b *strings.Builder) {
		b.WriteString(`<li draggable="true" id="`)
		b.WriteString(esc(it.project.ID))
		b.WriteString(`" data-project-id="`)
		b.WriteString(esc(it.project.ID))
		b.WriteString(`"><h2>`)
		b.WriteString(esc(it.project.Title))
		b.WriteString(`</h2><h3>`)
		b.WriteString(esc(it.Persons()))
		b.WriteString(` assigned</h3><p>`)
		b.WriteString(esc(it.project.Description))
		b.WriteString(`</p></li>`)
	})
}

// Render implements templ.Component.
func (it *ProjectItem) Render(_ context.Context, w io.Writer) error {
	return it.out.write(w)
}
