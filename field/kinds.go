package field

import (
	"fmt"

	"github.com/i--storm/structures/coerce"
)

// Named field constructors, one per built-in kind. Each fixes the kind's
// coercion function and takes only the default value; pass NoDefault to
// declare none.

// Integer declares an int64-valued field.
func Integer(def any) (*Simple, error) {
	return New(coerce.Int, def)
}

// Float declares a float64-valued field.
func Float(def any) (*Simple, error) {
	return New(coerce.Float, def)
}

// Decimal declares a decimal.Decimal-valued field.
func Decimal(def any) (*Simple, error) {
	return New(coerce.Decimal, def)
}

// Boolean declares a bool-valued field.
func Boolean(def any) (*Simple, error) {
	return New(coerce.Bool, def)
}

// Bytes declares a []byte-valued field. Assigning text to it fails: byte
// content has to arrive as bytes or go through a text field's codec.
func Bytes(def any) (*Simple, error) {
	return New(coerce.Bytes, def)
}

// Binary declares a []byte-valued field.
//
// Deprecated: Binary is the historical name of Bytes. Use Bytes.
func Binary(def any) (*Simple, error) {
	return Bytes(def)
}

// Text declares a string-valued field decoding byte input as UTF-8.
func Text(def any) (*Simple, error) {
	return New(coerce.Text, def)
}

// TextEnc declares a string-valued field decoding byte input with the
// named codec. Codec names follow the IANA character set registry.
func TextEnc(def any, enc string) (*Simple, error) {
	fn, err := coerce.TextEncoding(enc)
	if err != nil {
		return nil, err
	}

	return New(fn, def)
}

// List declares a coerce.List-valued container field.
func List(def any) (*Container, error) {
	return NewContainer(coerce.ToList, def)
}

// Tuple declares a coerce.Tuple-valued container field.
func Tuple(def any) (*Container, error) {
	return NewContainer(coerce.ToTuple, def)
}

// Set declares a coerce.Set-valued container field.
func Set(def any) (*Container, error) {
	return NewContainer(coerce.ToSet, def)
}

// FrozenSet declares a coerce.FrozenSet-valued container field.
func FrozenSet(def any) (*Container, error) {
	return NewContainer(coerce.ToFrozenSet, def)
}

// Dict declares a coerce.Dict-valued container field.
func Dict(def any) (*Container, error) {
	return NewContainer(coerce.ToDict, def)
}

// ByKind declares a field of the given kind, selecting the Simple or
// Container variant from the kind's category. The schema layer builds
// declared fields through it.
func ByKind(k coerce.KindEnum, def any) (Field, error) {
	fn := k.Func()
	if fn == nil {
		return nil, fmt.Errorf("kind %v declares no coercion function", k)
	}

	if k.IsContainer() {
		return NewContainer(fn, def)
	}

	return New(fn, def)
}
