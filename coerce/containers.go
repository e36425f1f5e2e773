package coerce

import "reflect"

// List is the value type produced by list coercion. Elements are copied
// from the input as-is; coercion never converts element types.
type List []any

// Tuple is the value type produced by tuple coercion. It shares the slice
// shape with List; the distinct type records that the value is fixed-size
// by convention.
type Tuple []any

// Set is the value type produced by set coercion.
type Set map[any]struct{}

// FrozenSet is the value type produced by frozenset coercion. Go has no
// read-only maps; the distinct type records the intent.
type FrozenSet map[any]struct{}

// Dict is the value type produced by dict coercion.
type Dict map[any]any

// Add inserts v into the set. Values whose dynamic type cannot be used
// as a map key are rejected with ErrNotComparable.
func (s Set) Add(v any) error {
	return storeKey(func() { s[v] = struct{}{} }, v)
}

// Contains reports whether v is in the set. Values that cannot be
// hashed report false.
func (s Set) Contains(v any) bool {
	return hasKey(s, v)
}

// Contains reports whether v is in the set. Values that cannot be
// hashed report false.
func (s FrozenSet) Contains(v any) bool {
	return hasKey(s, v)
}

func hasKey(m map[any]struct{}, v any) (ok bool) {
	if checkComparable(v) != nil {
		return false
	}

	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	_, ok = m[v]

	return ok
}

func (d Dict) put(key, value any) error {
	return storeKey(func() { d[key] = value }, key)
}

func checkComparable(v any) error {
	if v == nil {
		return nil
	}

	if !reflect.TypeOf(v).Comparable() {
		return ErrNotComparable
	}

	return nil
}

// storeKey runs the insert with the key pre-checked. A key of comparable
// type can still hold nested uncomparable values; the runtime hash panic
// for those is converted to ErrNotComparable.
func storeKey(insert func(), key any) (err error) {
	if err = checkComparable(key); err != nil {
		return err
	}

	defer func() {
		if recover() != nil {
			err = ErrNotComparable
		}
	}()

	insert()

	return nil
}
