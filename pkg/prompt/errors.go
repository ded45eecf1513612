package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrMissingName reports an input declaration without a name attribute,
	// which leaves nowhere to bind the answer.
	ErrMissingName = errors.New("prompt: input name attribute is required")
)
