package structure

import (
	"slices"

	"github.com/i--storm/structures/field"
)

// Type is a named record type: an ordered set of field declarations.
// Every declared attribute is mediated by a descriptor shared between all
// instances of the type.
type Type struct {
	name  string
	order []string
	descs map[string]*field.Descriptor
}

// NewType starts an empty structure type declaration.
func NewType(name string) *Type {
	return &Type{
		name:  name,
		descs: make(map[string]*field.Descriptor),
	}
}

// Name returns the structure type name.
func (t *Type) Name() string {
	return t.name
}

// Add declares a named attribute backed by f. Declaring a name twice
// replaces the earlier field and keeps the original declaration position.
func (t *Type) Add(name string, f field.Field) error {
	if name == "" {
		return ErrEmptyAttributeName
	}

	if f == nil {
		return ErrNilField
	}

	field.Contribute(f, t, name)

	return nil
}

// MustAdd is Add for package-level declarations: it panics on error and
// returns the type so declarations chain.
func (t *Type) MustAdd(name string, f field.Field) *Type {
	if err := t.Add(name, f); err != nil {
		panic(err)
	}

	return t
}

// Install registers the descriptor as the accessor for the named
// attribute. It implements field.Owner; Contribute calls it.
func (t *Type) Install(name string, d *field.Descriptor) {
	if _, ok := t.descs[name]; !ok {
		t.order = append(t.order, name)
	}

	t.descs[name] = d
}

// Descriptor returns the accessor for the named attribute.
func (t *Type) Descriptor(name string) (*field.Descriptor, bool) {
	d, ok := t.descs[name]

	return d, ok
}

// FieldNames returns the declared attribute names in declaration order.
func (t *Type) FieldNames() []string {
	return slices.Clone(t.order)
}

// Len returns the number of declared attributes.
func (t *Type) Len() int {
	return len(t.descs)
}

// New creates an instance of the type with every attribute unset.
func (t *Type) New() *Instance {
	return &Instance{
		typ:    t,
		values: make(map[string]any),
	}
}
