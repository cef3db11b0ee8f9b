package views

import (
	"context"
	"io"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// Page is the document shell. Components attach into its #app container.
type Page struct {
	title    string
	children []Component
}

var _ Host = (*Page)(nil)

// NewPage returns an empty page titled title.
func NewPage(title string) *Page {
	return &Page{title: title}
}

func (p *Page) mount(c Component, atStart bool) {
	if atStart {
		p.children = append([]Component{c}, p.children...)
		return
	}
	p.children = append(p.children, c)
}

// Render implements templ.Component.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`)
	b.WriteString(esc(p.title))
	b.WriteString(`</title><style>`)
	b.WriteString(stylesheet)
	b.WriteString(`</style></head><body><header class="board-header"><h1>`)
	b.WriteString(esc(p.title))
	b.WriteString(`</h1></header><div id="app">`)
	renderAll(ctx, &b, p.children)
	b.WriteString(`</div><script>`)
	b.WriteString(dragScript)
	b.WriteString(`</script></body></html>`)

	_, err := io.WriteString(w, b.String())
	return err
}

// Board owns the long-lived list views and assembles pages around a form.
type Board struct {
	title string
	lists []*ProjectList
}

// NewBoard creates one list per status, subscribed to src.
func NewBoard(title string, src Source) *Board {
	b := &Board{title: title}
	for _, s := range project.Statuses {
		b.lists = append(b.lists, NewProjectList(s, src))
	}
	return b
}

// Title returns the board title.
func (b *Board) Title() string {
	return b.title
}

// List returns the list view for status.
func (b *Board) List(status project.Status) (*ProjectList, bool) {
	for _, l := range b.lists {
		if l.Status() == status {
			return l, true
		}
	}
	return nil, false
}

// Page assembles a page with form on top followed by the lists.
func (b *Board) Page(form *ProjectForm) *Page {
	p := NewPage(b.title)
	for _, l := range b.lists {
		l.Attach(p)
	}
	form.Attach(p)
	return p
}

// Rendered reports whether every list has produced markup.
func (b *Board) Rendered() bool {
	for _, l := range b.lists {
		l.mu.RLock()
		empty := l.out.html == ""
		l.mu.RUnlock()
		if empty {
			return false
		}
	}
	return true
}
