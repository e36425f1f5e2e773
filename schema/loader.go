package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader reads schema declarations and turns them into structure types.
type Loader struct {
	log      zerolog.Logger
	registry *Registry
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger routes loader debug output to the given logger.
func WithLogger(log zerolog.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// WithRegistry replaces the built-in kind registry.
func WithRegistry(r *Registry) LoaderOption {
	return func(l *Loader) { l.registry = r }
}

// NewLoader returns a loader with the built-in kinds. It logs nowhere
// unless WithLogger is given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		log:      zerolog.Nop(),
		registry: NewRegistry(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Registry returns the kind registry the loader builds fields with.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// LoadFile loads and parses a YAML schema file from the given path.
func (l *Loader) LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	l.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("schema file read")

	return l.Parse(data)
}

// Parse parses YAML data into a SchemaFile. Parsing is strict: unknown
// keys are errors. Empty input parses as an empty schema.
func (l *Loader) Parse(data []byte) (*SchemaFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sf SchemaFile

	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return &SchemaFile{}, nil
		}

		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return &sf, nil
}
