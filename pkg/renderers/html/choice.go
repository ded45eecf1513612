package html

import (
	"context"
	"io"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Radio renders one radio input per option, each followed by its label.
type Radio struct{}

// Supports accepts "radio".
func (Radio) Supports(inputType string) bool {
	return inputType == "radio"
}

// Render writes the radio group.
func (Radio) Render(_ context.Context, w io.Writer, in *field.Input) error {
	options, err := ComputeOptions(in)
	if err != nil {
		return err
	}
	return writeChoices(w, "radio", in, options)
}

// Checkbox renders one checkbox per option when options are present. With
// no options it renders a single checkbox submitting SubmitValue, checked
// when the current value equals it.
type Checkbox struct{}

// Supports accepts "checkbox".
func (Checkbox) Supports(inputType string) bool {
	return inputType == "checkbox"
}

// Render writes the checkbox or checkbox group.
func (Checkbox) Render(_ context.Context, w io.Writer, in *field.Input) error {
	if in.Options == nil {
		return writeSingleCheckbox(w, in)
	}
	options, err := ComputeOptions(in)
	if err != nil {
		return err
	}
	return writeChoices(w, "checkbox", in, options)
}

// DefaultSubmitValue is submitted by a lone checkbox without SubmitValue.
const DefaultSubmitValue = "true"

func writeSingleCheckbox(w io.Writer, in *field.Input) error {
	submit := in.SubmitValue
	if submit == "" {
		submit = DefaultSubmitValue
	}
	checked := in.Value != nil && selection(in.Value)(submit)

	var b strings.Builder
	b.WriteString(`<input`)
	writeAttrs(&b, attr{name: "type", value: "checkbox"})
	writeAttributes(&b, in.Attributes, "type", "value", "checked")
	writeAttrs(&b,
		attr{name: "value", value: submit},
		attr{name: "checked", value: checked},
	)
	b.WriteString(`>`)
	_, err := io.WriteString(w, b.String())
	return err
}

// writeChoices renders radio or checkbox inputs, one per line. An id
// attribute is suffixed with the option value so every input stays unique.
func writeChoices(w io.Writer, inputType string, in *field.Input, options []RenderedOption) error {
	attrs := in.CloneAttributes()
	id, hasID := attrs["id"]
	delete(attrs, "id")

	var b strings.Builder
	for idx, opt := range options {
		if idx > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(`<input`)
		writeAttrs(&b, attr{name: "type", value: inputType})
		if hasID && id != nil {
			writeAttrs(&b, attr{name: "id", value: stringValue(id) + "_" + IDSuffix(opt.Value)})
		}
		writeAttributes(&b, attrs, "type", "value", "checked", "disabled")
		writeAttrs(&b,
			attr{name: "value", value: opt.Value},
			attr{name: "disabled", value: !opt.Enabled},
			attr{name: "checked", value: opt.Selected},
		)
		b.WriteString(`>`)
		b.WriteString(sanitizeLabel(opt.Label))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
