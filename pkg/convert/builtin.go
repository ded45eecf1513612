package convert

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry pre-populated with the builtin scalar
// converters. Use Clone before registering application types when isolation
// matters.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewBuiltinRegistry()
	})
	return defaultRegistry
}

// NewBuiltinRegistry constructs a fresh registry holding string, bool,
// integer and floating point converters.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()

	MustRegister[string](r, func(raw string) (string, error) { return raw, nil }, func(v string) string { return v })
	MustRegister[bool](r, func(raw string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(raw))
	}, strconv.FormatBool)

	registerSigned[int](r, strconv.IntSize)
	registerSigned[int8](r, 8)
	registerSigned[int16](r, 16)
	registerSigned[int32](r, 32)
	registerSigned[int64](r, 64)

	registerUnsigned[uint](r, strconv.IntSize)
	registerUnsigned[uint8](r, 8)
	registerUnsigned[uint16](r, 16)
	registerUnsigned[uint32](r, 32)
	registerUnsigned[uint64](r, 64)

	registerFloat[float32](r, 32)
	registerFloat[float64](r, 64)

	return r
}

func registerSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](r *Registry, bits int) {
	MustRegister[T](r, func(raw string) (T, error) {
		parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, bits)
		if err != nil {
			return 0, err
		}
		return T(parsed), nil
	}, func(v T) string {
		return strconv.FormatInt(int64(v), 10)
	})
}

func registerUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](r *Registry, bits int) {
	MustRegister[T](r, func(raw string) (T, error) {
		parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, bits)
		if err != nil {
			return 0, err
		}
		return T(parsed), nil
	}, func(v T) string {
		return strconv.FormatUint(uint64(v), 10)
	})
}

func registerFloat[T ~float32 | ~float64](r *Registry, bits int) {
	MustRegister[T](r, func(raw string) (T, error) {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), bits)
		if err != nil {
			return 0, err
		}
		return T(parsed), nil
	}, func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	})
}

// Enum builds a converter that maps names to values. A value's name is its
// String() result when it implements fmt.Stringer, otherwise its %v form.
// Lookup is exact and case-sensitive.
func Enum[T comparable](values ...T) Converter[T] {
	byName := make(map[string]T, len(values))
	for _, value := range values {
		byName[enumName(value)] = value
	}
	return Converter[T]{
		Parse: func(raw string) (T, error) {
			if value, ok := byName[raw]; ok {
				return value, nil
			}
			var zero T
			return zero, fmt.Errorf("unknown constant %q", raw)
		},
		Format: enumName[T],
	}
}

func enumName[T any](value T) string {
	if named, ok := any(value).(fmt.Stringer); ok {
		return named.String()
	}
	return fmt.Sprint(value)
}
