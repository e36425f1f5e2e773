package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i--storm/structures/options"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "structures-gen" {
		t.Errorf("expected Use to be 'structures-gen', got %s", cmd.Use)
	}

	expectedCommands := []string{"check", "gen", "init", "version"}

	for _, expected := range expectedCommands {
		found := false

		for _, sub := range cmd.Commands() {
			if sub.Name() == expected {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected command %s to be registered", expected)
		}
	}
}

// runCommand executes the CLI with the given arguments and captures
// both output streams.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeSchema(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validSchema = `structures:
  - name: user
    fields:
      - age: integer
      - login: text
`

func TestCheckCommand_Valid(t *testing.T) {
	path := writeSchema(t, validSchema)

	stdout, stderr, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "no errors")
	assert.Empty(t, stderr)
}

func TestCheckCommand_Invalid(t *testing.T) {
	path := writeSchema(t, `structures:
  - name: user
    fields:
      - age: intger
`)

	_, stderr, err := runCommand(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "unknown_kind")
	assert.Contains(t, stderr, "did you mean")
}

func TestCheckCommand_MissingFile(t *testing.T) {
	_, _, err := runCommand(t, "check", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGenCommand(t *testing.T) {
	path := writeSchema(t, validSchema)
	outDir := filepath.Join(t.TempDir(), "generated")

	stdout, _, err := runCommand(t, "gen", path, "-o", outDir, "-p", "people")
	require.NoError(t, err)
	assert.Contains(t, stdout, "user_gen.go")

	content, err := os.ReadFile(filepath.Join(outDir, "user_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package people")
	assert.Contains(t, string(content), "func NewUser() User {")
}

func TestGenCommand_RefusesInvalidSchema(t *testing.T) {
	path := writeSchema(t, `structures:
  - name: user
    fields:
      - age: intger
`)

	_, _, err := runCommand(t, "gen", path, "-o", filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
}

func TestGenCommand_UnknownFeature(t *testing.T) {
	path := writeSchema(t, validSchema)

	_, _, err := runCommand(t, "gen", path, "-o", t.TempDir(), "--features", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown feature "bogus"`)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	stdout, _, err := runCommand(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "structures:")

	// A second init refuses to clobber the file without --force.
	_, _, err = runCommand(t, "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCommand(t, "init", "--force", path)
	require.NoError(t, err)
}

func TestInitThenGen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	_, _, err := runCommand(t, "init", path)
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "generated")

	_, _, err = runCommand(t, "gen", path, "-o", outDir, "-p", "people")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "user_gen.go"))
	require.NoError(t, err)
}

func TestParseFeatures(t *testing.T) {
	features, err := parseFeatures(nil)
	require.NoError(t, err)
	assert.Equal(t, options.FeatureDefault, features)

	features, err = parseFeatures([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, options.FeatureAll, features)

	features, err = parseFeatures([]string{"typed-accessors", "zerolog"})
	require.NoError(t, err)
	assert.True(t, features.Has(options.FeatureTypedAccessors))
	assert.True(t, features.Has(options.FeatureZeroLog))
	assert.False(t, features.Has(options.FeatureMustConstructors))

	_, err = parseFeatures([]string{"bogus"})
	require.Error(t, err)
}
