package html

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Select renders a <select> element. Consecutive options sharing a non-empty
// group are wrapped in an <optgroup>. The declaration body is emitted after
// the generated options.
type Select struct{}

// Supports accepts "select".
func (Select) Supports(inputType string) bool {
	return inputType == "select"
}

// Render writes the select element and its options.
func (Select) Render(_ context.Context, w io.Writer, in *field.Input) error {
	options, err := ComputeOptions(in)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(`<select`)
	writeAttributes(&b, in.Attributes, "type", "value")
	b.WriteString(`>`)

	for _, run := range groupRuns(options) {
		group := run[0].Group
		if group != "" {
			b.WriteString(`<optgroup label="`)
			b.WriteString(html.EscapeString(group))
			b.WriteString(`">`)
		}
		for _, opt := range run {
			writeSelectOption(&b, opt)
		}
		if group != "" {
			b.WriteString(`</optgroup>`)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := in.WriteBody(w); err != nil {
		return err
	}
	_, err = io.WriteString(w, `</select>`)
	return err
}

func writeSelectOption(b *strings.Builder, opt RenderedOption) {
	b.WriteString(`<option`)
	writeAttrs(b,
		attr{name: "value", value: opt.Value},
		attr{name: "selected", value: opt.Selected},
		attr{name: "disabled", value: !opt.Enabled},
	)
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(opt.Label))
	b.WriteString(`</option>`)
}
