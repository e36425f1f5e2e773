package schema

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/field"
)

// Builder constructs a field from its schema declaration.
type Builder func(spec FieldSpec) (field.Field, error)

// Registry maps kind names to field builders. A fresh registry knows the
// built-in kinds; Add makes custom kinds declarable in schema files.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry pre-populated with the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder, coerce.KindTotal)}

	for _, name := range coerce.KindNames() {
		kind, _ := coerce.Kind(name)
		r.Add(name, kindBuilder(kind))
	}

	return r
}

func kindBuilder(kind coerce.KindEnum) Builder {
	if kind == coerce.KindText {
		return textBuilder
	}

	return func(spec FieldSpec) (field.Field, error) {
		return field.ByKind(kind, spec.DeclaredDefault())
	}
}

// textBuilder honors the optional encoding declaration.
func textBuilder(spec FieldSpec) (field.Field, error) {
	if spec.Encoding == "" {
		return field.Text(spec.DeclaredDefault())
	}

	return field.TextEnc(spec.DeclaredDefault(), spec.Encoding)
}

// Add registers a builder under a kind name, replacing any previous one.
func (r *Registry) Add(name string, b Builder) {
	r.builders[name] = b
}

// Get returns the builder registered under the kind name.
func (r *Registry) Get(name string) (Builder, bool) {
	b, ok := r.builders[name]

	return b, ok
}

// Has reports whether the kind name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]

	return ok
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	return stringset.FromKeys(r.builders).Elements()
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.builders)
}
