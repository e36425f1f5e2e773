package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/i--storm/structures/internal/common"
)

// Save serializes a SchemaFile to canonical YAML: shorthand pairs where
// possible, two-space indent.
func Save(sf *SchemaFile) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(sf); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes a SchemaFile to the given path.
func WriteFile(sf *SchemaFile, path string) error {
	data, err := Save(sf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, common.FilePerm); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
