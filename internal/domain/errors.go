package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the tasker domain.
// These errors can be checked with errors.Is.
var (
	// ErrIndexOutOfRange is returned when an index does not address a task.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrDecode is returned when a task file cannot be decoded.
	ErrDecode = errors.New("invalid task file")
)

// IndexError reports an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (list has %d tasks)", ErrIndexOutOfRange, e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// DecodeError reports a task file whose contents are not a valid task list.
type DecodeError struct {
	// Path is the file that failed to decode, if known.
	Path string

	// Location is the position of the offending value, e.g. "[2][1]".
	// Empty when the document as a whole is malformed.
	Location string

	// Err is the underlying parse or validation error.
	Err error
}

func (e *DecodeError) Error() string {
	msg := ErrDecode.Error()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Location != "" {
		msg += " at " + e.Location
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
