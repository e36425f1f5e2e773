package coerce

import (
	"errors"
	"fmt"
)

var (
	ErrNotIterable   = errors.New("value is not iterable")
	ErrNotComparable = errors.New("value is not comparable")
	ErrNotAPair      = errors.New("element is not a key/value pair")
	ErrNotFinite     = errors.New("value is not finite")
	ErrNotAnInteger  = errors.New("element is not an integer")
	ErrUnencodedText = errors.New("text requires an explicit encoding")
	ErrByteRange     = errors.New("bytes must be in range 0..255")
	ErrNegativeCount = errors.New("negative count")
	ErrInvalidBytes  = errors.New("invalid byte sequence for the codec")
)

// Error reports a value rejected by a coercion function.
type Error struct {
	Value  any    // the rejected input
	Target string // the value type the input was being coerced to
	Err    error  // underlying cause, may be nil
}

func newError(value any, target string, cause error) *Error {
	return &Error{Value: value, Target: target, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot coerce %T to %s: %v", e.Value, e.Target, e.Err)
	}

	return fmt.Sprintf("cannot coerce %T to %s", e.Value, e.Target)
}

func (e *Error) Unwrap() error {
	return e.Err
}
