// Package templates holds the HTML views as templ components. The editor is
// HTMX-driven: field edits and item operations post back and swap the page
// body, mirroring how the server re-renders after every mutation.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// esc escapes a value for safe interpolation into HTML text or attributes.
func esc(s string) string {
	return templ.EscapeString(s)
}

// hw is a small write helper that latches the first error so component
// bodies can stay linear instead of checking every write.
type hw struct {
	w   io.Writer
	err error
}

func (h *hw) put(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *hw) putf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

func (h *hw) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Layout wraps a body component in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &hw{w: w}
		h.put(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		h.put(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.putf(`<title>%s</title>`, esc(title))
		h.put(`<script src="https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"></script>`)
		h.put(`<link rel="stylesheet" href="/static/style.css">`)
		h.put(`</head><body>`)
		h.component(ctx, body)
		h.put(`<div id="toast" class="toast" hidden></div>`)
		h.put(`<script src="/static/app.js"></script>`)
		h.put(`</body></html>`)
		return h.err
	})
}
