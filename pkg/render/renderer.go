package render

import (
	"context"
	"io"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Renderer produces HTML for one or more input types. Supports is consulted
// once per type; the dispatcher caches the first renderer that accepts it.
type Renderer interface {
	Supports(inputType string) bool
	Render(ctx context.Context, w io.Writer, in *field.Input) error
}

// Func adapts a render function and a fixed type list into a Renderer.
type Func struct {
	Types []string
	Fn    func(ctx context.Context, w io.Writer, in *field.Input) error
}

// Supports reports whether inputType is listed in Types.
func (f Func) Supports(inputType string) bool {
	for _, candidate := range f.Types {
		if field.NormalizeType(candidate) == inputType {
			return true
		}
	}
	return false
}

// Render invokes Fn.
func (f Func) Render(ctx context.Context, w io.Writer, in *field.Input) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx, w, in)
}
