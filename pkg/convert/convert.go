// Package convert holds the string conversion table used by typed lists and
// the binding layer. Conversions are resolved by target type when a consumer
// is constructed, so indexed writes never need runtime type inspection.
package convert

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrConversion is matched by every *Error returned from a converter.
	ErrConversion = errors.New("convert: conversion failed")
	// ErrNotRegistered signals a lookup for a type without a converter.
	ErrNotRegistered = errors.New("convert: no converter registered")
)

// Func parses a raw string into T.
type Func[T any] func(raw string) (T, error)

// FormatFunc renders T back into its string form.
type FormatFunc[T any] func(value T) string

// Converter pairs the parse and format directions for a single type.
type Converter[T any] struct {
	Parse  Func[T]
	Format FormatFunc[T]
}

// Convert parses raw, wrapping failures in *Error.
func (c Converter[T]) Convert(raw string) (T, error) {
	var zero T
	if c.Parse == nil {
		return zero, &Error{Type: reflect.TypeFor[T](), Input: raw, Err: ErrNotRegistered}
	}
	value, err := c.Parse(raw)
	if err != nil {
		var convErr *Error
		if errors.As(err, &convErr) {
			return zero, err
		}
		return zero, &Error{Type: reflect.TypeFor[T](), Input: raw, Err: err}
	}
	return value, nil
}

// String formats value, falling back to fmt when no formatter is set.
func (c Converter[T]) String(value T) string {
	if c.Format == nil {
		return fmt.Sprint(value)
	}
	return c.Format(value)
}

// Error describes a failed conversion.
type Error struct {
	Type  reflect.Type
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("convert: cannot convert %q to %s: %v", e.Input, e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrConversion so callers can match any conversion failure.
func (e *Error) Is(target error) bool {
	return target == ErrConversion
}

// Registry maps target types to converters. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[reflect.Type]any)}
}

// Register associates parse and format functions with T. Existing entries
// are replaced. A nil format falls back to fmt.Sprint.
func Register[T any](r *Registry, parse Func[T], format FormatFunc[T]) error {
	if r == nil {
		return errors.New("convert: registry is nil")
	}
	if parse == nil {
		return fmt.Errorf("convert: parse function for %s is nil", reflect.TypeFor[T]())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[reflect.TypeFor[T]()] = Converter[T]{Parse: parse, Format: format}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister[T any](r *Registry, parse Func[T], format FormatFunc[T]) {
	if err := Register(r, parse, format); err != nil {
		panic(err)
	}
}

// RegisterEnum registers an Enum converter for the supplied values.
func RegisterEnum[T comparable](r *Registry, values ...T) error {
	conv := Enum(values...)
	return Register(r, conv.Parse, conv.Format)
}

// Lookup resolves the converter registered for T.
func Lookup[T any](r *Registry) (Converter[T], error) {
	typ := reflect.TypeFor[T]()
	if r == nil {
		return Converter[T]{}, fmt.Errorf("%w for %s", ErrNotRegistered, typ)
	}
	r.mu.RLock()
	entry, ok := r.converters[typ]
	r.mu.RUnlock()
	if !ok {
		return Converter[T]{}, fmt.Errorf("%w for %s", ErrNotRegistered, typ)
	}
	conv, ok := entry.(Converter[T])
	if !ok {
		return Converter[T]{}, fmt.Errorf("convert: converter for %s has unexpected type %T", typ, entry)
	}
	return conv, nil
}

// Has reports whether a converter is registered for typ.
func (r *Registry) Has(typ reflect.Type) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.converters[typ]
	return ok
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.converters))
	for typ := range r.converters {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy so callers can extend a shared registry in isolation.
func (r *Registry) Clone() *Registry {
	cloned := NewRegistry()
	if r == nil {
		return cloned
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for typ, conv := range r.converters {
		cloned.converters[typ] = conv
	}
	return cloned
}
