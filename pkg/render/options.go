package render

import "go.uber.org/zap"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithProviders appends renderers consulted, in order, when the cache has no
// entry for a type. When more than one provider supports a type the first
// one wins; callers should not rely on that ordering.
func WithProviders(providers ...Renderer) Option {
	return func(d *Dispatcher) {
		for _, provider := range providers {
			if provider != nil {
				d.providers = append(d.providers, provider)
			}
		}
	}
}

// WithRenderer seeds the cache with renderer for inputType.
func WithRenderer(inputType string, renderer Renderer) Option {
	return func(d *Dispatcher) {
		_ = d.Register(inputType, renderer)
	}
}

// WithLogger sets the logger used for cache misses and discovery.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}
