package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-inputfield/pkg/field"
)

// Dispatcher maps input types to renderers. Lookups hit the cache first and
// fall back to the provider list; the first provider that supports a type is
// cached for it. Concurrent misses for the same type may each run discovery,
// but they store the same renderer, so the cache stays consistent.
type Dispatcher struct {
	mu        sync.RWMutex
	cache     map[string]Renderer
	providers []Renderer
	logger    *zap.Logger
}

// New creates a dispatcher with an empty cache.
func New(options ...Option) *Dispatcher {
	d := &Dispatcher{
		cache:  make(map[string]Renderer),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Register caches renderer for inputType, replacing any existing entry.
func (d *Dispatcher) Register(inputType string, renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	key := field.NormalizeType(inputType)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache[key] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (d *Dispatcher) MustRegister(inputType string, renderer Renderer) {
	if err := d.Register(inputType, renderer); err != nil {
		panic(err)
	}
}

// Resolve returns the renderer for inputType. An empty type resolves as
// "text".
func (d *Dispatcher) Resolve(inputType string) (Renderer, error) {
	key := field.NormalizeType(inputType)

	d.mu.RLock()
	renderer, ok := d.cache[key]
	providers := d.providers
	d.mu.RUnlock()
	if ok {
		return renderer, nil
	}

	d.logger.Debug("renderer cache miss", zap.String("type", key), zap.Int("providers", len(providers)))
	for _, provider := range providers {
		if !provider.Supports(key) {
			continue
		}
		d.mu.Lock()
		d.cache[key] = provider
		d.mu.Unlock()
		d.logger.Debug("renderer discovered",
			zap.String("type", key),
			zap.String("renderer", fmt.Sprintf("%T", provider)))
		return provider, nil
	}

	d.logger.Warn("no renderer supports input type", zap.String("type", key))
	return nil, &UnsupportedTypeError{Type: key}
}

// Render resolves the renderer for in.Type and writes its output to w. The
// output is buffered so a failing renderer leaves w untouched.
func (d *Dispatcher) Render(ctx context.Context, w io.Writer, in *field.Input) error {
	if in == nil {
		return errors.New("render: input is required")
	}
	if w == nil {
		return errors.New("render: writer is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	renderer, err := d.Resolve(in.Type)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, &buf, in); err != nil {
		return fmt.Errorf("render: %s input: %w", in.NormalizedType(), err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// RenderString is a convenience wrapper returning the rendered HTML.
func (d *Dispatcher) RenderString(ctx context.Context, in *field.Input) (string, error) {
	var buf bytes.Buffer
	if err := d.Render(ctx, &buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Warm resolves each type up front so request-time lookups only read the
// cache. It returns the joined errors for types nothing supports.
func (d *Dispatcher) Warm(inputTypes ...string) error {
	var errs []error
	for _, inputType := range inputTypes {
		if _, err := d.Resolve(inputType); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Types returns the cached type names, sorted.
func (d *Dispatcher) Types() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.cache))
	for name := range d.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether inputType is cached.
func (d *Dispatcher) Has(inputType string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.cache[field.NormalizeType(inputType)]
	return ok
}
