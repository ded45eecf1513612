package field

import (
	"fmt"
	"io"
	"maps"
	"strings"
)

// DefaultType is used when an Input does not declare a type.
const DefaultType = "text"

// Input declares a single form control. It is built per render and
// discarded afterwards.
type Input struct {
	Type        string
	Value       any
	SubmitValue string
	Options     any

	ValueProperty   string
	LabelProperty   string
	GroupProperty   string
	EnabledProperty string

	// Attributes holds extra HTML attributes written verbatim (after
	// encoding) onto the rendered element.
	Attributes map[string]any

	// Body renders nested content, such as extra select options. Renderers
	// that have no body slot ignore it.
	Body func(w io.Writer) error
}

// NormalizedType returns the trimmed type, falling back to DefaultType.
func (in *Input) NormalizedType() string {
	if in == nil {
		return DefaultType
	}
	return NormalizeType(in.Type)
}

// NormalizeType trims inputType, defaulting to "text". Types are
// case-sensitive: "dateRange" and "daterange" are different types.
func NormalizeType(inputType string) string {
	trimmed := strings.TrimSpace(inputType)
	if trimmed == "" {
		return DefaultType
	}
	return trimmed
}

// SetAttribute records an extra HTML attribute.
func (in *Input) SetAttribute(name string, value any) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if in.Attributes == nil {
		in.Attributes = make(map[string]any)
	}
	in.Attributes[name] = value
}

// Attribute returns the attribute value for name.
func (in *Input) Attribute(name string) (any, bool) {
	if in == nil || in.Attributes == nil {
		return nil, false
	}
	value, ok := in.Attributes[name]
	return value, ok
}

// Name returns the name attribute as a string.
func (in *Input) Name() string {
	value, ok := in.Attribute("name")
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// CloneAttributes returns a copy of the attribute map so renderers can
// consume entries without mutating the declaration.
func (in *Input) CloneAttributes() map[string]any {
	if in == nil || len(in.Attributes) == 0 {
		return make(map[string]any)
	}
	return maps.Clone(in.Attributes)
}

// WriteBody invokes Body when present.
func (in *Input) WriteBody(w io.Writer) error {
	if in == nil || in.Body == nil {
		return nil
	}
	return in.Body(w)
}

func (in *Input) String() string {
	if in == nil {
		return "Input(nil)"
	}
	return fmt.Sprintf("Input[type=%s value=%v submitValue=%s valueProperty=%s labelProperty=%s groupProperty=%s enabledProperty=%s attributes=%v]",
		in.NormalizedType(), in.Value, in.SubmitValue, in.ValueProperty, in.LabelProperty,
		in.GroupProperty, in.EnabledProperty, in.Attributes)
}
