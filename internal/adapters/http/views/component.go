// Package views renders the board as HTML. Views are templ components that
// keep their markup up to date: list views subscribe to the project state
// and rebuild their fragment on every notification, so handlers only copy
// already rendered markup to the response.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Component is a mountable piece of the board.
type Component interface {
	templ.Component

	// Attach mounts the component into host.
	Attach(host Host)

	// RenderContent rebuilds the component's markup from its current data.
	RenderContent()
}

// Host is a container components attach to.
type Host interface {
	mount(c Component, atStart bool)
}

// fragment holds rendered markup and writes it on Render.
type fragment struct {
	html string
}

func (f *fragment) set(build func(b *strings.Builder)) {
	var b strings.Builder
	build(&b)
	f.html = b.String()
}

func (f *fragment) write(w io.Writer) error {
	_, err := io.WriteString(w, f.html)
	return err
}

// renderAll renders cs in order into b. Render errors from in-memory
// components cannot happen with a strings.Builder and are ignored.
func renderAll(ctx context.Context, b *strings.Builder, cs []Component) {
	for _, c := range cs {
		_ = c.Render(ctx, b)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}
