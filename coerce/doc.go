// Package coerce implements the built-in value coercions behind every
// field kind: the conversion functions themselves, the canonical value
// types they produce, and the KindEnum/CategoryEnum classification used
// by schemas and generated accessors.
//
// # Kinds
//
// Eleven kinds are built in:
//
//	integer    int64            truncates, parses base-10 text
//	float      float64          widens, parses text
//	decimal    decimal.Decimal  exact arithmetic values, parses text
//	boolean    bool             total truthiness, never fails
//	bytes      []byte           copies buffers, zeroed buffer from a count
//	text       string           decodes byte buffers, formats anything else
//	list       List             any iterable, order preserved
//	tuple      Tuple            any iterable, order preserved
//	set        Set              any iterable, duplicates collapse
//	frozenset  FrozenSet        any iterable, duplicates collapse
//	dict       Dict             a mapping or an iterable of key/value pairs
//
// # Iterables
//
// Wherever a container coercion takes "any iterable", that means: the
// container types of this package, any slice or array, any map (yielding
// its keys), text (yielding single-character strings), byte buffers
// (yielding byte values as integers) and iter.Seq[any] sequences.
//
// # Failure
//
// Rejected input yields an *Error carrying the input value, the target
// kind name and the cause. Coercions never panic, never modify or alias
// their input, and leave no partial results behind on failure.
package coerce
