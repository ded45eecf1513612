package field

import (
	"github.com/goliatone/go-inputfield/pkg/message"
)

// PropertyValue is the property name under which Field exposes its value to
// property paths such as "value.[0]".
const PropertyValue = "value"

// Field wraps a bound value together with the messages produced while
// binding or validating it.
type Field[T any] struct {
	value    T
	messages []message.Message
}

// Initialize wraps value in a Field.
func Initialize[T any](value T) *Field[T] {
	return &Field[T]{value: value}
}

// Value returns the wrapped value.
func (f *Field[T]) Value() T {
	return f.value
}

// SetValue replaces the wrapped value.
func (f *Field[T]) SetValue(value T) {
	f.value = value
}

// AddMessage attaches a message to the field.
func (f *Field[T]) AddMessage(msg message.Message) {
	f.messages = append(f.messages, msg)
}

// Messages returns the attached messages.
func (f *Field[T]) Messages() []message.Message {
	return append([]message.Message(nil), f.messages...)
}

// Level reports the most severe attached message level.
func (f *Field[T]) Level() message.Level {
	return message.Highest(f.messages)
}

// Property exposes the wrapped value under PropertyValue.
func (f *Field[T]) Property(name string) (any, bool) {
	if name != PropertyValue {
		return nil, false
	}
	return f.value, true
}

// SetProperty assigns the wrapped value when v has type T.
func (f *Field[T]) SetProperty(name string, v any) bool {
	if name != PropertyValue {
		return false
	}
	typed, ok := v.(T)
	if !ok {
		return false
	}
	f.value = typed
	return true
}
