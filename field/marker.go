package field

// noDefaultMarker is the type behind NoDefault. Keeping it unexported
// guarantees NoDefault is the only value of its type outside this
// package.
type noDefaultMarker struct{}

// NoDefault marks the absence of a declared default value. It is
// distinct from every legal field value, including nil: a field declared
// with a nil default has a default, a field declared with NoDefault has
// none and fails unset reads with *UnsetAttributeError.
var NoDefault = noDefaultMarker{}

// IsNoDefault reports whether v is the NoDefault marker.
func IsNoDefault(v any) bool {
	_, ok := v.(noDefaultMarker)

	return ok
}
