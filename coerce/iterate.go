package coerce

import (
	"iter"
	"reflect"
	"slices"

	"github.com/i--storm/structures/utils"
)

// elements materializes the values an input yields when iterated over:
// characters of text, byte values of a buffer, elements of a sequence,
// keys of a set or a mapping. The result is always freshly allocated, so
// callers may keep it without aliasing the input.
func elements(value any) ([]any, error) {
	switch v := value.(type) {
	default:
		return reflectElements(value)
	case nil:
		return nil, ErrNotIterable
	case string:
		return runeElements(v), nil
	case []byte:
		out := make([]any, len(v))
		for i, b := range v {
			out[i] = int64(b)
		}

		return out, nil
	case []any:
		return slices.Clone(v), nil
	case List:
		return append([]any(nil), v...), nil
	case Tuple:
		return append([]any(nil), v...), nil
	case Set:
		return keysOf(v), nil
	case FrozenSet:
		return keysOf(v), nil
	case Dict:
		return keysOf(v), nil
	case iter.Seq[any]:
		return slices.Collect(v), nil
	}
}

func keysOf[M ~map[any]V, V any](m M) []any {
	out := make([]any, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

// runeElements splits text into single-character strings, the way
// iterating text yields characters rather than bytes.
func runeElements(s string) []any {
	out := make([]any, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

func reflectElements(value any) ([]any, error) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	default:
		return nil, ErrNotIterable
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, nil
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			out = append(out, k.Interface())
		}

		return out, nil
	case reflect.String:
		return runeElements(rv.String()), nil
	}
}

// pairs materializes key/value pairs: from a dict or any map directly,
// otherwise from an iterable whose every element is itself a two-element
// iterable.
func pairs(value any) ([][2]any, error) {
	switch v := value.(type) {
	default:
		return pairElements(value)
	case nil:
		return nil, ErrNotIterable
	case Dict:
		out := make([][2]any, 0, len(v))
		for key, val := range v {
			out = append(out, [2]any{key, val})
		}

		return out, nil
	case iter.Seq2[any, any]:
		var out [][2]any
		for key, val := range v {
			out = append(out, [2]any{key, val})
		}

		return out, nil
	}
}

func pairElements(value any) ([][2]any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map {
		out := make([][2]any, 0, rv.Len())

		it := rv.MapRange()
		for it.Next() {
			out = append(out, [2]any{it.Key().Interface(), it.Value().Interface()})
		}

		return out, nil
	}

	elems, err := elements(value)
	if err != nil {
		return nil, err
	}

	out := make([][2]any, 0, len(elems))

	for _, el := range elems {
		kv, err := elements(el)
		if err != nil || len(kv) != 2 {
			return nil, ErrNotAPair
		}

		key, val := utils.Unpack2(kv)
		out = append(out, [2]any{key, val})
	}

	return out, nil
}
