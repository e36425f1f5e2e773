package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/field"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, len(coerce.KindNames()), r.Len())
	assert.Equal(t, coerce.KindNames(), r.Names())

	for _, name := range coerce.KindNames() {
		assert.True(t, r.Has(name), "missing builder for %q", name)
	}

	_, ok := r.Get("no-such-kind")
	assert.False(t, ok)
}

func TestRegistry_BuildsDeclaredFields(t *testing.T) {
	r := NewRegistry()

	build, ok := r.Get("integer")
	require.True(t, ok)

	f, err := build(FieldSpec{Name: "age", Kind: "integer", Default: 10, HasDefault: true})
	require.NoError(t, err)

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	// no default key means no default
	f, err = build(FieldSpec{Name: "age", Kind: "integer"})
	require.NoError(t, err)
	assert.False(t, f.HasDefault())

	// container kinds pick the container variant
	build, ok = r.Get("list")
	require.True(t, ok)

	f, err = build(FieldSpec{Name: "tags", Kind: "list", Default: []any{1}, HasDefault: true})
	require.NoError(t, err)
	assert.IsType(t, &field.Container{}, f)
}

func TestRegistry_TextEncoding(t *testing.T) {
	r := NewRegistry()

	build, _ := r.Get("text")

	f, err := build(FieldSpec{Name: "title", Kind: "text", Encoding: "ISO-8859-1"})
	require.NoError(t, err)

	v, err := f.Coerce([]byte{0xe9})
	require.NoError(t, err)
	assert.Equal(t, "é", v)

	_, err = build(FieldSpec{Name: "title", Kind: "text", Encoding: "KLINGON-1"})
	assert.Error(t, err)
}

func TestRegistry_CustomKind(t *testing.T) {
	r := NewRegistry()

	r.Add("upper", func(spec FieldSpec) (field.Field, error) {
		fn, err := field.Adapt(strings.ToUpper)
		if err != nil {
			return nil, err
		}

		return field.New(fn, spec.DeclaredDefault())
	})

	assert.True(t, r.Has("upper"))
	assert.Equal(t, len(coerce.KindNames())+1, r.Len())

	build, _ := r.Get("upper")

	f, err := build(FieldSpec{Name: "shout", Kind: "upper", Default: "quiet", HasDefault: true})
	require.NoError(t, err)

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, "QUIET", v)
}
