package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrInputOpen is matched by every [*InputOpenError].
	ErrInputOpen = errors.New("cannot open input")

	// ErrOutputOpen is matched by every [*OutputOpenError].
	ErrOutputOpen = errors.New("cannot open output")

	// ErrUnknownEncoding means an input encoding name is not in the WHATWG encoding index.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// InputOpenError means the input path could not be opened for reading.
type InputOpenError struct {
	Path string
	Err  error
}

func (e *InputOpenError) Unwrap() error {
	return e.Err
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("open input %q: %v", e.Path, e.Err)
}

func (e *InputOpenError) Is(target error) bool {
	return target == ErrInputOpen
}

// OutputOpenError means the output path could not be opened for writing.
type OutputOpenError struct {
	Path string
	Err  error
}

func (e *OutputOpenError) Unwrap() error {
	return e.Err
}

func (e *OutputOpenError) Error() string {
	return fmt.Sprintf("open output %q: %v", e.Path, e.Err)
}

func (e *OutputOpenError) Is(target error) bool {
	return target == ErrOutputOpen
}
