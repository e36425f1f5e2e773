package structure

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAttributeName = errors.New("attribute name is empty")
	ErrNilField           = errors.New("field is nil")
)

// UnknownAttributeError reports an access to an attribute the structure
// type never declared.
type UnknownAttributeError struct {
	Structure string
	Attr      string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("structure %q declares no attribute %q", e.Structure, e.Attr)
}
