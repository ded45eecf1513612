package html

import (
	"github.com/goliatone/go-inputfield/pkg/render"
)

// Providers returns the renderers offered for discovery: textarea and the
// HTML5 passthrough types.
func Providers() []render.Renderer {
	return []render.Renderer{
		Textarea{},
		NewPassthrough(),
	}
}

// Register seeds d with the text, select, radio and checkbox renderers.
func Register(d *render.Dispatcher) {
	d.MustRegister("text", Text{})
	d.MustRegister("select", Select{})
	d.MustRegister("radio", Radio{})
	d.MustRegister("checkbox", Checkbox{})
}

// NewDispatcher builds a dispatcher with the built-in renderers cached.
// Options are applied afterwards, so callers can replace a built-in type;
// providers supplied through options are consulted before the defaults.
func NewDispatcher(options ...render.Option) *render.Dispatcher {
	opts := []render.Option{
		render.WithRenderer("text", Text{}),
		render.WithRenderer("select", Select{}),
		render.WithRenderer("radio", Radio{}),
		render.WithRenderer("checkbox", Checkbox{}),
	}
	opts = append(opts, options...)
	opts = append(opts, render.WithProviders(Providers()...))
	return render.New(opts...)
}
