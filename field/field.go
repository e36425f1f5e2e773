package field

import (
	"github.com/i--storm/structures/coerce"
)

// Field couples a coercion function with an optional default value.
// Every value assigned through a Descriptor passes the coercion before
// it is stored; the default resolution policy on unset reads is what
// distinguishes the two implementations, Simple and Container.
//
// Fields are immutable after construction and shared by every instance
// of every structure type that declares them.
type Field interface {
	// Coerce converts a value to the field's canonical representation.
	Coerce(value any) (any, error)

	// Default resolves the declared default value. It fails with
	// ErrNoDefault when the field was declared without one.
	Default() (any, error)

	// HasDefault reports whether a default value was declared.
	HasDefault() bool
}

// Simple is the field variant for scalar values. The declared default
// passes the coercion once, at construction, and every unset read
// returns the stored result as-is.
type Simple struct {
	fn  coerce.Func
	def any
	has bool
}

// New builds a Simple field from a coercion function and a default
// value. Pass NoDefault to declare no default. A default the coercion
// rejects fails construction, so an invalid declaration surfaces at
// declaration time rather than at first read.
func New(fn coerce.Func, def any) (*Simple, error) {
	if fn == nil {
		return nil, ErrNilCoerceFunc
	}

	f := &Simple{fn: fn}

	if !IsNoDefault(def) {
		coerced, err := fn(def)
		if err != nil {
			return nil, err
		}

		f.def = coerced
		f.has = true
	}

	return f, nil
}

// Coerce applies the field's coercion function.
func (f *Simple) Coerce(value any) (any, error) {
	return f.fn(value)
}

// Default returns the value coerced at construction.
func (f *Simple) Default() (any, error) {
	if !f.has {
		return nil, ErrNoDefault
	}

	return f.def, nil
}

// HasDefault reports whether a default value was declared.
func (f *Simple) HasDefault() bool {
	return f.has
}

// Container is the field variant for mutable collection values. The
// declared default passes the coercion once at construction, which
// validates it; every unset read then re-applies the coercion to the
// stored value and returns the fresh result. Two instances reading the
// same unset attribute therefore get equal but distinct collections, and
// mutating one never leaks into the other or into the declaration.
type Container struct {
	fn  coerce.Func
	def any
	has bool
}

// NewContainer builds a Container field. The construction rule is the
// same as New; only the unset-read policy differs.
func NewContainer(fn coerce.Func, def any) (*Container, error) {
	if fn == nil {
		return nil, ErrNilCoerceFunc
	}

	f := &Container{fn: fn}

	if !IsNoDefault(def) {
		coerced, err := fn(def)
		if err != nil {
			return nil, err
		}

		f.def = coerced
		f.has = true
	}

	return f, nil
}

// Coerce applies the field's coercion function.
func (f *Container) Coerce(value any) (any, error) {
	return f.fn(value)
}

// Default re-coerces the stored default and returns the fresh result.
func (f *Container) Default() (any, error) {
	if !f.has {
		return nil, ErrNoDefault
	}

	return f.fn(f.def)
}

// HasDefault reports whether a default value was declared.
func (f *Container) HasDefault() bool {
	return f.has
}

// Must panics on a field construction error. It keeps package-level
// structure declarations compact:
//
//	var userType = structure.NewType("User").
//		MustAdd("age", field.Must(field.Integer(10)))
func Must[F Field](f F, err error) F {
	if err != nil {
		panic(err)
	}

	return f
}
