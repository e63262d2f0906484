// Package component provides the templ components rendered by the bulletin
// web app.
package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup to w, remembering the first error so components
// can be written straight through and checked once.
type htmlWriter struct {
	ctx context.Context //nolint:containedctx // scoped to a single Render call
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (hw *htmlWriter) raw(markup ...string) {
	for _, s := range markup {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

// text writes escaped text. It is also safe for double-quoted attribute values.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// url writes a sanitized, escaped URL for use in an attribute value.
func (hw *htmlWriter) url(s string) {
	hw.text(string(templ.URL(s)))
}

// component renders a child component.
func (hw *htmlWriter) component(c templ.Component) {
	if hw.err == nil && c != nil {
		hw.err = c.Render(hw.ctx, hw.w)
	}
}

// Alert renders a dismissable error message. An empty message renders nothing.
func Alert(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		hw := newWriter(ctx, w)
		hw.raw(`<div class="`, ClassAlert, " ", ClassAlertDanger, `" role="alert">`)
		hw.text(msg)
		hw.raw(`</div>`)
		return hw.err
	})
}

// csrfField renders the hidden CSRF token input. Browsers that send
// Sec-Fetch-Site headers may have no token, in which case nothing is rendered.
func csrfField(hw *htmlWriter, token string) {
	if token == "" {
		return
	}
	hw.raw(`<input type="hidden" name="`, FieldCSRF, `" value="`)
	hw.text(token)
	hw.raw(`">`)
}

// inputField renders a labelled input.
func inputField(hw *htmlWriter, label, typ, name, value string, required bool) {
	hw.raw(`<label for="`, name, `">`)
	hw.text(label)
	hw.raw(`</label><input type="`, typ, `" id="`, name, `" name="`, name, `"`)
	if value != "" {
		hw.raw(` value="`)
		hw.text(value)
		hw.raw(`"`)
	}
	if required {
		hw.raw(` required`)
	}
	hw.raw(`>`)
}
