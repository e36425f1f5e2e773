package field

import (
	"errors"
	"fmt"
)

var (
	ErrNilCoerceFunc = errors.New("coerce function is nil")
	ErrNoDefault     = errors.New("field declares no default value")
	ErrNotAFunction  = errors.New("adapted value is not a function")
	ErrNotAdaptable  = errors.New("function signature is not adaptable to a coercion")
	ErrValueRejected = errors.New("function rejected the value")
)

// UnsetAttributeError reports a read of an attribute that has never been
// assigned on the instance and whose field declares no default.
type UnsetAttributeError struct {
	Attr string
}

func (e *UnsetAttributeError) Error() string {
	return fmt.Sprintf("attribute %q is not set", e.Attr)
}
