package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	src := `
structures:
  - name: User
    fields:
      - age: integer
      - name: nickname
        kind: text
        default: anonymous
      - name: tags
        kind: set
        default: [665, 666, 667]
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	diags := l.Validate(sf)
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	diags := NewLoader().Validate(nil)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "schema_is_nil", diags.Errors[0].Code)
}

func TestValidate_Warnings(t *testing.T) {
	l := NewLoader()

	diags := l.Validate(&SchemaFile{})
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "empty_schema", diags.Warnings[0].Code)
	assert.True(t, diags.IsValid())

	sf, err := l.Parse([]byte("structures:\n  - name: Empty\n"))
	require.NoError(t, err)

	diags = l.Validate(sf)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "no_fields", diags.Warnings[0].Code)
	assert.Equal(t, "Empty", diags.Warnings[0].Structure)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantCode  string
		wantField string
	}{
		{
			name: "missing structure name",
			yaml: `
structures:
  - fields:
      - age: integer
`,
			wantCode: "missing_structure_name",
		},
		{
			name: "duplicate structure",
			yaml: `
structures:
  - name: User
    fields:
      - age: integer
  - name: User
    fields:
      - age: integer
`,
			wantCode: "duplicate_structure",
		},
		{
			name: "missing field name",
			yaml: `
structures:
  - name: User
    fields:
      - kind: integer
`,
			wantCode: "missing_field_name",
		},
		{
			name: "duplicate field",
			yaml: `
structures:
  - name: User
    fields:
      - age: integer
      - age: float
`,
			wantCode:  "duplicate_field",
			wantField: "age",
		},
		{
			name: "reserved field name",
			yaml: `
structures:
  - name: User
    fields:
      - name: kind
        kind: text
`,
			wantCode:  "reserved_field_name",
			wantField: "kind",
		},
		{
			name: "missing kind",
			yaml: `
structures:
  - name: User
    fields:
      - name: age
`,
			wantCode:  "missing_kind",
			wantField: "age",
		},
		{
			name: "unknown kind",
			yaml: `
structures:
  - name: User
    fields:
      - age: intger
`,
			wantCode:  "unknown_kind",
			wantField: "age",
		},
		{
			name: "encoding on non-text kind",
			yaml: `
structures:
  - name: User
    fields:
      - name: age
        kind: integer
        encoding: UTF-8
`,
			wantCode:  "encoding_non_text",
			wantField: "age",
		},
		{
			name: "unknown encoding",
			yaml: `
structures:
  - name: User
    fields:
      - name: title
        kind: text
        encoding: KLINGON-1
`,
			wantCode:  "unknown_encoding",
			wantField: "title",
		},
		{
			name: "invalid scalar default",
			yaml: `
structures:
  - name: User
    fields:
      - name: age
        kind: integer
        default: "12.5"
`,
			wantCode:  "invalid_default",
			wantField: "age",
		},
		{
			name: "invalid container default",
			yaml: `
structures:
  - name: User
    fields:
      - name: tags
        kind: set
        default: 42
`,
			wantCode:  "invalid_default",
			wantField: "tags",
		},
	}

	l := NewLoader()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := l.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			diags := l.Validate(sf)
			require.True(t, diags.HasErrors(), "expected errors, got none")
			assert.Equal(t, tt.wantCode, diags.Errors[0].Code)
			assert.Equal(t, tt.wantField, diags.Errors[0].Field)
		})
	}
}

func TestValidate_UnknownKindSuggests(t *testing.T) {
	src := `
structures:
  - name: User
    fields:
      - age: intger
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	diags := l.Validate(sf)
	require.Len(t, diags.Errors, 1)

	e := diags.Errors[0]
	assert.Equal(t, "unknown_kind", e.Code)
	assert.Contains(t, e.Suggestions, "integer")
	assert.Contains(t, e.String(), "did you mean")
}

func TestValidate_FirstErrorPerFieldOnly(t *testing.T) {
	// both the kind and the encoding are broken; only the kind reports
	src := `
structures:
  - name: User
    fields:
      - name: age
        kind: intger
        encoding: KLINGON-1
`

	l := NewLoader()

	sf, err := l.Parse([]byte(src))
	require.NoError(t, err)

	diags := l.Validate(sf)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "unknown_kind", diags.Errors[0].Code)
}
