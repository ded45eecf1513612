package render

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is matched by every UnsupportedTypeError.
var ErrUnsupportedType = errors.New("render: unsupported input type")

// UnsupportedTypeError reports that no registered or discoverable renderer
// accepts Type. It is a configuration error and is never retried.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("render: no renderer exists to support an input of type %q", e.Type)
}

// Is reports ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
