// Package dyna provides the typed, auto-growing list used for indexed form
// binding. Writes past the end pad the list with empty slots; reads past the
// end report absence instead of failing, so posted indices such as
// tags[3] can arrive in any order.
package dyna

import (
	"errors"
	"fmt"
	"math"

	"github.com/goliatone/go-inputfield/pkg/convert"
)

// ErrIndexOutOfRange is returned for negative indices, indices above the
// list's maximum and removals past the end of the list.
var ErrIndexOutOfRange = errors.New("dyna: index out of range")

// MaxIndex is the default highest index a list accepts on indexed writes.
// Indices usually come from posted form keys, so growth must stay bounded.
const MaxIndex = 10000

// Option configures a List.
type Option func(*config)

type config struct {
	maxIndex int
}

// WithMaxIndex overrides MaxIndex. Negative values are ignored.
func WithMaxIndex(limit int) Option {
	return func(cfg *config) {
		if limit >= 0 {
			cfg.maxIndex = min(limit, math.MaxInt-1)
		}
	}
}

type slot[T any] struct {
	value T
	set   bool
}

// List is an ordered sequence of T with string conversion support. Empty
// slots behave like null entries: Get reports them as absent.
//
// List is not safe for concurrent mutation.
type List[T any] struct {
	items      []slot[T]
	conv       convert.Converter[T]
	maxIndex   int
	successful bool
}

// New constructs an empty list using conv for string conversions.
func New[T any](conv convert.Converter[T], options ...Option) *List[T] {
	cfg := config{maxIndex: MaxIndex}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &List[T]{conv: conv, maxIndex: cfg.maxIndex}
}

// Construct resolves the converter for T from reg. When reg is nil the
// builtin default registry is used.
func Construct[T any](reg *convert.Registry, options ...Option) (*List[T], error) {
	if reg == nil {
		reg = convert.Default()
	}
	conv, err := convert.Lookup[T](reg)
	if err != nil {
		return nil, fmt.Errorf("dyna: construct list: %w", err)
	}
	return New(conv, options...), nil
}

// MustConstruct panics when no converter is registered for T.
func MustConstruct[T any](reg *convert.Registry, options ...Option) *List[T] {
	list, err := Construct[T](reg, options...)
	if err != nil {
		panic(err)
	}
	return list
}

// Of builds a list holding values, resolving the converter from the default
// registry when possible.
func Of[T any](values ...T) *List[T] {
	conv, _ := convert.Lookup[T](convert.Default())
	list := New(conv)
	list.AddAll(values)
	return list
}

// Len reports the number of slots, including empty ones.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the value at index. Indices past the end and empty slots
// report false; the list never grows on read.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if l == nil || index < 0 || index >= len(l.items) {
		return zero, false
	}
	entry := l.items[index]
	if !entry.set {
		return zero, false
	}
	return entry.value, true
}

// GetString returns the string projection of the value at index.
func (l *List[T]) GetString(index int) (string, bool) {
	value, ok := l.Get(index)
	if !ok {
		return "", false
	}
	return l.conv.String(value), true
}

// GetAny returns the value at index as an untyped value, or nil when absent.
func (l *List[T]) GetAny(index int) any {
	value, ok := l.Get(index)
	if !ok {
		return nil
	}
	return value
}

// MaxIndex reports the highest index accepted by indexed writes.
func (l *List[T]) MaxIndex() int {
	return l.maxIndex
}

// Set stores value at index, growing the list with empty slots as needed.
func (l *List[T]) Set(index int, value T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.grow(index + 1)
	l.items[index] = slot[T]{value: value, set: true}
	return nil
}

// SetString converts raw to T and stores it at index. A conversion failure
// leaves the list untouched.
func (l *List[T]) SetString(index int, raw string) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	value, err := l.conv.Convert(raw)
	if err != nil {
		return fmt.Errorf("dyna: set index %d: %w", index, err)
	}
	return l.Set(index, value)
}

// Add appends item and returns it.
func (l *List[T]) Add(item T) T {
	l.items = append(l.items, slot[T]{value: item, set: true})
	l.successful = true
	return item
}

// AddAll appends items and returns them. The success flag reflects whether
// anything was appended.
func (l *List[T]) AddAll(items []T) []T {
	for _, item := range items {
		l.items = append(l.items, slot[T]{value: item, set: true})
	}
	l.successful = len(items) > 0
	return items
}

// InsertAll inserts items at index, shifting existing entries to higher
// indices. An index past the end pads the list first. It reports whether the
// list changed, which is also recorded as the success flag. Insertions that
// would push the last slot past MaxIndex are refused.
func (l *List[T]) InsertAll(index int, items []T) bool {
	if index < 0 || index > l.maxIndex || len(items) == 0 ||
		max(index, len(l.items)) > l.maxIndex+1-len(items) {
		l.successful = false
		return false
	}
	l.grow(index)
	inserted := make([]slot[T], len(items))
	for i, item := range items {
		inserted[i] = slot[T]{value: item, set: true}
	}
	tail := append([]slot[T](nil), l.items[index:]...)
	l.items = append(append(l.items[:index], inserted...), tail...)
	l.successful = true
	return true
}

// Remove deletes the slot at index and returns its value.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.Len() {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	entry := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return entry.value, nil
}

// Clear drops every slot.
func (l *List[T]) Clear() {
	l.items = nil
}

// WasSuccessful reports whether the last Add, AddAll or InsertAll changed the
// list.
func (l *List[T]) WasSuccessful() bool {
	return l != nil && l.successful
}

// Values returns a copy of the stored values. Empty slots hold the zero
// value of T.
func (l *List[T]) Values() []T {
	if l.Len() == 0 {
		return nil
	}
	out := make([]T, len(l.items))
	for i, entry := range l.items {
		out[i] = entry.value
	}
	return out
}

// Strings returns the string projection of every slot. Empty slots become
// empty strings.
func (l *List[T]) Strings() []string {
	if l.Len() == 0 {
		return nil
	}
	out := make([]string, len(l.items))
	for i, entry := range l.items {
		if entry.set {
			out[i] = l.conv.String(entry.value)
		}
	}
	return out
}

// Each calls fn for every non-empty slot in index order.
func (l *List[T]) Each(fn func(index int, value T)) {
	if l == nil || fn == nil {
		return
	}
	for i, entry := range l.items {
		if entry.set {
			fn(i, entry.value)
		}
	}
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index > l.maxIndex {
		return fmt.Errorf("%w: %d (max %d)", ErrIndexOutOfRange, index, l.maxIndex)
	}
	return nil
}

func (l *List[T]) grow(size int) {
	if size <= len(l.items) {
		return
	}
	l.items = append(l.items, make([]slot[T], size-len(l.items))...)
}
