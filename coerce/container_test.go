package coerce_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i--storm/structures/coerce"
)

func TestToList(t *testing.T) {
	t.Parallel()

	v, err := coerce.ToList("hé")
	require.NoError(t, err)
	assert.Equal(t, coerce.List{"h", "é"}, v)

	v, err = coerce.ToList([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, coerce.List{int64(1), int64(2)}, v)

	v, err = coerce.ToList(coerce.Tuple{1, "two"})
	require.NoError(t, err)
	assert.Equal(t, coerce.List{1, "two"}, v)

	v, err = coerce.ToList([3]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, coerce.List{"a", "b", "c"}, v)

	seq := iter.Seq[any](func(yield func(any) bool) {
		for _, el := range []any{665, 666} {
			if !yield(el) {
				return
			}
		}
	})

	v, err = coerce.ToList(seq)
	require.NoError(t, err)
	assert.Equal(t, coerce.List{665, 666}, v)

	for _, in := range []any{nil, 42, 2.5} {
		_, err := coerce.ToList(in)
		assert.ErrorIs(t, err, coerce.ErrNotIterable, "%v", in)
	}
}

func TestToList_FreshPerCall(t *testing.T) {
	t.Parallel()

	src := []any{665, 666}

	first, err := coerce.ToList(src)
	require.NoError(t, err)

	second, err := coerce.ToList(src)
	require.NoError(t, err)

	first.(coerce.List)[0] = "mutated"

	assert.Equal(t, coerce.List{665, 666}, second)
	assert.Equal(t, []any{665, 666}, src)
}

func TestToTuple(t *testing.T) {
	t.Parallel()

	v, err := coerce.ToTuple(coerce.List{1, 2})
	require.NoError(t, err)
	assert.Equal(t, coerce.Tuple{1, 2}, v)

	v, err = coerce.ToTuple("ab")
	require.NoError(t, err)
	assert.Equal(t, coerce.Tuple{"a", "b"}, v)

	_, err = coerce.ToTuple(struct{}{})
	assert.ErrorIs(t, err, coerce.ErrNotIterable)
}

func TestToSet(t *testing.T) {
	t.Parallel()

	v, err := coerce.ToSet("aab")
	require.NoError(t, err)
	assert.Equal(t, coerce.Set{"a": {}, "b": {}}, v)

	v, err = coerce.ToSet([]any{665, 665, 666})
	require.NoError(t, err)

	s := v.(coerce.Set)
	assert.Len(t, s, 2)
	assert.True(t, s.Contains(665))
	assert.False(t, s.Contains("665"))

	_, err = coerce.ToSet([]any{[]int{1}})
	assert.ErrorIs(t, err, coerce.ErrNotComparable)

	// a key of comparable type can still hold an unhashable value
	_, err = coerce.ToSet([]any{[2]any{1, []int{1}}})
	assert.ErrorIs(t, err, coerce.ErrNotComparable)
}

func TestToFrozenSet(t *testing.T) {
	t.Parallel()

	v, err := coerce.ToFrozenSet("aeiou")
	require.NoError(t, err)
	assert.Equal(t, coerce.FrozenSet{"a": {}, "e": {}, "i": {}, "o": {}, "u": {}}, v)

	fs := v.(coerce.FrozenSet)
	assert.True(t, fs.Contains("e"))
	assert.False(t, fs.Contains("x"))
}

func TestSetContains_Unhashable(t *testing.T) {
	t.Parallel()

	s := coerce.Set{"a": {}}

	assert.False(t, s.Contains([]int{1}))
	assert.False(t, s.Contains([2]any{1, []int{1}}))
	assert.False(t, coerce.FrozenSet{"a": {}}.Contains([]int{1}))
}

func TestToDict(t *testing.T) {
	t.Parallel()

	v, err := coerce.ToDict(map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, coerce.Dict{"k": "v"}, v)

	v, err = coerce.ToDict(map[int]string{5: "five"})
	require.NoError(t, err)
	assert.Equal(t, coerce.Dict{5: "five"}, v)

	v, err = coerce.ToDict([]any{coerce.Tuple{"a", 1}, "xy"})
	require.NoError(t, err)
	assert.Equal(t, coerce.Dict{"a": 1, "x": "y"}, v)

	seq := iter.Seq2[any, any](func(yield func(any, any) bool) {
		yield("k", 1)
	})

	v, err = coerce.ToDict(seq)
	require.NoError(t, err)
	assert.Equal(t, coerce.Dict{"k": 1}, v)

	_, err = coerce.ToDict([]any{[]any{1, 2, 3}})
	assert.ErrorIs(t, err, coerce.ErrNotAPair)

	_, err = coerce.ToDict([]any{42})
	assert.ErrorIs(t, err, coerce.ErrNotAPair)

	_, err = coerce.ToDict(42)
	assert.ErrorIs(t, err, coerce.ErrNotIterable)

	_, err = coerce.ToDict([]any{[]any{[]int{1}, "v"}})
	assert.ErrorIs(t, err, coerce.ErrNotComparable)
}

func TestToDict_CopiesInput(t *testing.T) {
	t.Parallel()

	src := coerce.Dict{"a": 1}

	v, err := coerce.ToDict(src)
	require.NoError(t, err)

	v.(coerce.Dict)["b"] = 2
	assert.Equal(t, coerce.Dict{"a": 1}, src)
}
