package html

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Textarea renders a multi-line text control. The value becomes the element
// content, followed by the declaration body.
type Textarea struct{}

// Supports accepts "textarea".
func (Textarea) Supports(inputType string) bool {
	return inputType == "textarea"
}

// Render writes <textarea ...>value</textarea>.
func (Textarea) Render(_ context.Context, w io.Writer, in *field.Input) error {
	var b strings.Builder
	b.WriteString(`<textarea`)
	writeAttributes(&b, in.Attributes, "type", "value")
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(stringValue(in.Value)))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := in.WriteBody(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</textarea>`)
	return err
}
