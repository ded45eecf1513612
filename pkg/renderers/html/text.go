package html

import (
	"context"
	"io"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Text renders a single-line text input.
type Text struct{}

// Supports accepts "text".
func (Text) Supports(inputType string) bool {
	return inputType == "text"
}

// Render writes <input type="text" ...>.
func (Text) Render(_ context.Context, w io.Writer, in *field.Input) error {
	return writeInput(w, "text", in)
}

// writeInput renders a void <input> element of the given type. Attribute
// "type" and "value" entries are ignored in favour of the declaration.
func writeInput(w io.Writer, inputType string, in *field.Input) error {
	var b strings.Builder
	b.WriteString(`<input`)
	writeAttrs(&b, attr{name: "type", value: inputType})
	writeAttributes(&b, in.Attributes, "type", "value")
	if in.Value != nil {
		writeAttrs(&b, attr{name: "value", value: stringValue(in.Value)})
	}
	b.WriteString(`>`)
	_, err := io.WriteString(w, b.String())
	return err
}
