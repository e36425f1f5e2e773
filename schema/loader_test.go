package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/field"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	src := `
structures:
  - name: User
    fields:
      - age: integer
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	sf, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sf.Structures, 1)
	assert.Equal(t, "User", sf.Structures[0].Name)

	_, err = NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	src := `
structures:
  - name: User
    fields:
      - name: age
        kind: integer
        default: 10
      - nickname: text
      - name: tags
        kind: set
        default: [665, 666, 667]
  - name: Blob
    fields:
      - name: payload
        kind: bytes
        default: [104, 105]
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	types, diags, err := l.Build(sf)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
	require.Len(t, types, 2)

	user := types[0]
	assert.Equal(t, "User", user.Name())
	assert.Equal(t, []string{"age", "nickname", "tags"}, user.FieldNames())

	u := user.New()

	v, err := u.Get("age")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	require.NoError(t, u.Set("tags", "919293"))

	v, err = u.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, coerce.Set{"9": {}, "1": {}, "2": {}, "3": {}}, v)

	// a YAML integer list is how byte content is declared
	b := types[1].New()

	v, err = b.Get("payload")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), v)
}

func TestBuild_ContainerDefaultsStayFresh(t *testing.T) {
	src := `
structures:
  - name: User
    fields:
      - name: tags
        kind: set
        default: [665]
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	types, _, err := l.Build(sf)
	require.NoError(t, err)

	user := types[0]
	alice, bob := user.New(), user.New()

	v, err := alice.Get("tags")
	require.NoError(t, err)
	require.NoError(t, v.(coerce.Set).Add("mutated"))

	v, err = bob.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, coerce.Set{665: {}}, v)
}

func TestBuild_RefusesInvalid(t *testing.T) {
	src := `
structures:
  - name: User
    fields:
      - age: intger
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	types, diags, err := l.Build(sf)
	assert.Nil(t, types)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_kind")
	assert.True(t, diags.HasErrors())

	_, _, err = l.Build(nil)
	assert.Error(t, err)
}

func TestBuild_CustomRegistry(t *testing.T) {
	r := NewRegistry()
	r.Add("upper", func(spec FieldSpec) (field.Field, error) {
		fn, err := field.Adapt(strings.ToUpper)
		if err != nil {
			return nil, err
		}

		return field.New(fn, spec.DeclaredDefault())
	})

	l := NewLoader(WithRegistry(r))

	src := `
structures:
  - name: Banner
    fields:
      - shout: upper
`

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	types, _, err := l.Build(sf)
	require.NoError(t, err)

	b := types[0].New()
	require.NoError(t, b.Set("shout", "hi"))

	v, err := b.Get("shout")
	require.NoError(t, err)
	assert.Equal(t, "HI", v)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	sf := &SchemaFile{Structures: []StructureSpec{
		{Name: "User", Fields: []FieldSpec{{Name: "age", Kind: "integer"}}},
	}}

	require.NoError(t, WriteFile(sf, path))

	loaded, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sf, loaded)
}
