package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AlertInvalidInput is shown when the submitted form breaks the form rules.
const AlertInvalidInput = "Invalid input!"

// FormValues are the raw field values of the project form.
type FormValues struct {
	Title       string
	Description string
	People      string
}

// ProjectForm renders the project input form. Values are echoed back into
// the fields so a rejected submission can be corrected.
type ProjectForm struct {
	values FormValues
	alert  string
	out    fragment
}

var _ Component = (*ProjectForm)(nil)

// NewProjectForm returns a rendered form. An empty alert renders no alert.
func NewProjectForm(values FormValues, alert string) *ProjectForm {
	f := &ProjectForm{values: values, alert: alert}
	f.RenderContent()
	return f
}

// Attach inserts the form at the start of host.
func (f *ProjectForm) Attach(host Host) {
	host.mount(f, true)
}

// RenderContent rebuilds the form markup.
func (f *ProjectForm) RenderContent() {
	f.out.set(func(b *strings.Builder) {
		b.WriteString(`<form id="user-input" method="post" action="/projects">`)
		if f.alert != "" {
			b.WriteString(`<div class="alert" role="alert">`)
			b.WriteString(esc(f.alert))
			b.WriteString(`</div>`)
			writeAlertScript(b, f.alert)
		}
		b.WriteString(`<div class="form-control"><label for="title">Title</label>`)
		b.WriteString(`<input type="text" id="title" name="title" value="`)
		b.WriteString(esc(f.values.Title))
		b.WriteString(`"></div>`)
		b.WriteString(`<div class="form-control"><label for="description">Description</label>`)
		b.WriteString(`<textarea id="description" name="description" rows="3">`)
		b.WriteString(esc(f.values.Description))
		b.WriteString(`</textarea></div>`)
		b.WriteString(`<div class="form-control"><label for="people">People</label>`)
		b.WriteString(`<input type="number" id="people" name="people" step="1" min="0" max="10" value="`)
		b.WriteString(esc(f.values.People))
		b.WriteString(`"></div>`)
		b.WriteString(`<button type="submit">ADD PROJECT</button></form>`)
	})
}

// Render implements templ.Component.
func (f *ProjectForm) Render(_ context.Context, w io.Writer) error {
	return f.out.write(w)
}

// writeAlertScript adds a blocking browser alert for msg. The message is
// JSON encoded, which escapes <, > and & for use inside a script element.
func writeAlertScript(b *strings.Builder, msg string) {
	js, err := templ.JSONString(msg)
	if err != nil {
		return
	}
	b.WriteString(`<script>alert(`)
	b.WriteString(js)
	b.WriteString(`);</script>`)
}
