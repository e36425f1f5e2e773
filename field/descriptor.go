package field

// Instance is the per-instance value storage a Descriptor mediates. All
// instance-level state lives behind this interface, keyed by attribute
// name; neither the Field nor the Descriptor hold per-instance data.
type Instance interface {
	// StoredValue returns the value stored under the attribute name.
	StoredValue(name string) (any, bool)

	// StoreValue stores a value under the attribute name.
	StoreValue(name string, value any)
}

// Owner is a structure type fields can be installed onto.
type Owner interface {
	// Install registers the descriptor as the accessor for the named
	// attribute. A second Install under the same name replaces the
	// first.
	Install(name string, d *Descriptor)
}

// Contribute installs f onto the owner as the accessor for the named
// attribute. Structure types call it once per declared field while they
// are being built.
func Contribute(f Field, owner Owner, name string) {
	owner.Install(name, NewDescriptor(name, f))
}

// Descriptor mediates every read and write of one named attribute on a
// structure type. It holds the attribute name and a reference to the
// shared Field, nothing else.
type Descriptor struct {
	name  string
	field Field
}

// NewDescriptor binds an attribute name to a field.
func NewDescriptor(name string, f Field) *Descriptor {
	return &Descriptor{name: name, field: f}
}

// Name returns the attribute name the descriptor was installed under.
func (d *Descriptor) Name() string {
	return d.name
}

// Field returns the field the descriptor delegates to.
func (d *Descriptor) Field() Field {
	return d.field
}

// Get reads the attribute from the instance. A stored value is returned
// directly, with no re-coercion. An unset attribute resolves through the
// field's default policy; without a default the read fails with
// *UnsetAttributeError. Reads never write instance storage: an unset
// container attribute keeps producing fresh defaults until the instance
// is explicitly written.
func (d *Descriptor) Get(inst Instance) (any, error) {
	if v, ok := inst.StoredValue(d.name); ok {
		return v, nil
	}

	if !d.field.HasDefault() {
		return nil, &UnsetAttributeError{Attr: d.name}
	}

	return d.field.Default()
}

// Set coerces the value and stores the result on the instance. The write
// is atomic: on a coercion failure nothing is stored and the attribute
// keeps its previous state.
func (d *Descriptor) Set(inst Instance, value any) error {
	coerced, err := d.field.Coerce(value)
	if err != nil {
		return err
	}

	inst.StoreValue(d.name, coerced)

	return nil
}
