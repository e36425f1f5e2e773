package field_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/field"
)

func TestInteger_DefaultAndCoerce(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Integer("15"))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, int64(15), v)

	v, err = f.Coerce(7.9)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestFloat_DefaultAndCoerce(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Float(9))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, float64(9), v)

	v, err = f.Coerce("9.82")
	require.NoError(t, err)
	assert.Equal(t, 9.82, v)
}

func TestDecimal_DefaultAndCoerce(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Decimal("8.62"))

	v, err := f.Default()
	require.NoError(t, err)
	assert.True(t, v.(decimal.Decimal).Equal(decimal.RequireFromString("8.62")))

	_, err = f.Coerce("not a number")
	assert.Error(t, err)
}

func TestBoolean_DefaultAndCoerce(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Boolean(666))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = f.Coerce("")
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestBytes_RejectsText(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Bytes(3))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0}, v)

	_, err = f.Coerce("text")
	assert.ErrorIs(t, err, coerce.ErrUnencodedText)

	v, err = f.Coerce([]any{104, 105})
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), v)
}

func TestBinary_AliasesBytes(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Binary([]byte{7}))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, v)

	_, err = f.Coerce("text")
	assert.ErrorIs(t, err, coerce.ErrUnencodedText)
}

func TestText_DecodesAndFormats(t *testing.T) {
	t.Parallel()

	f := field.Must(field.Text([]byte("caf\xc3\xa9")))

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, "café", v)

	// anything that is not text or bytes is rendered
	v, err = f.Coerce(404)
	require.NoError(t, err)
	assert.Equal(t, "404", v)

	_, err = f.Coerce([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, coerce.ErrInvalidBytes)
}

func TestTextEnc(t *testing.T) {
	t.Parallel()

	f, err := field.TextEnc([]byte{0xe9}, "ISO-8859-1")
	require.NoError(t, err)

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, "é", v)

	_, err = field.TextEnc(field.NoDefault, "no-such-codec")
	assert.Error(t, err)
}

func TestContainerConstructors(t *testing.T) {
	t.Parallel()

	list := field.Must(field.List("abc"))
	v, err := list.Default()
	require.NoError(t, err)
	assert.Equal(t, coerce.List{"a", "b", "c"}, v)

	tuple := field.Must(field.Tuple([]any{1, "two"}))
	v, err = tuple.Default()
	require.NoError(t, err)
	assert.Equal(t, coerce.Tuple{1, "two"}, v)

	set := field.Must(field.Set([]any{1, 1, 2}))
	v, err = set.Default()
	require.NoError(t, err)
	assert.Equal(t, coerce.Set{1: {}, 2: {}}, v)

	frozen := field.Must(field.FrozenSet("aa"))
	v, err = frozen.Default()
	require.NoError(t, err)
	assert.Equal(t, coerce.FrozenSet{"a": {}}, v)

	dict := field.Must(field.Dict(map[string]any{"a": 1}))
	v, err = dict.Default()
	require.NoError(t, err)
	assert.Equal(t, coerce.Dict{"a": 1}, v)
}

func TestByKind(t *testing.T) {
	t.Parallel()

	f, err := field.ByKind(coerce.KindInteger, 10)
	require.NoError(t, err)
	assert.IsType(t, &field.Simple{}, f)

	v, err := f.Default()
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	f, err = field.ByKind(coerce.KindList, []any{1})
	require.NoError(t, err)
	assert.IsType(t, &field.Container{}, f)

	_, err = field.ByKind(coerce.KindEnum(0), field.NoDefault)
	assert.Error(t, err)
}
