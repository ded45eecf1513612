package html

import (
	"context"
	"io"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// HTML5Types lists the input types handled by Passthrough by default.
var HTML5Types = []string{
	"color", "date", "datetime-local", "email", "file", "hidden", "month",
	"number", "password", "range", "search", "tel", "time", "url", "week",
}

// Passthrough renders any of a fixed set of input types as a plain <input>
// element carrying the requested type.
type Passthrough struct {
	types map[string]struct{}
}

// NewPassthrough supports types, or HTML5Types when none are given.
func NewPassthrough(types ...string) *Passthrough {
	if len(types) == 0 {
		types = HTML5Types
	}
	p := &Passthrough{types: make(map[string]struct{}, len(types))}
	for _, inputType := range types {
		p.types[field.NormalizeType(inputType)] = struct{}{}
	}
	return p
}

// Supports reports whether inputType was configured.
func (p *Passthrough) Supports(inputType string) bool {
	_, ok := p.types[inputType]
	return ok
}

// Render writes <input type="..." ...> using the declaration's type.
func (p *Passthrough) Render(_ context.Context, w io.Writer, in *field.Input) error {
	return writeInput(w, in.NormalizedType(), in)
}
