package structure

// Instance is one record of a structure type. It stores assigned values
// only; unset attributes resolve through the type's descriptors on every
// read.
type Instance struct {
	typ    *Type
	values map[string]any
}

// Type returns the structure type the instance belongs to.
func (i *Instance) Type() *Type {
	return i.typ
}

// Get reads an attribute: the stored value if one was assigned, the
// field's default otherwise.
func (i *Instance) Get(name string) (any, error) {
	d, ok := i.typ.Descriptor(name)
	if !ok {
		return nil, &UnknownAttributeError{Structure: i.typ.Name(), Attr: name}
	}

	return d.Get(i)
}

// Set coerces the value through the attribute's field and stores the
// result. A rejected value leaves the attribute unchanged.
func (i *Instance) Set(name string, value any) error {
	d, ok := i.typ.Descriptor(name)
	if !ok {
		return &UnknownAttributeError{Structure: i.typ.Name(), Attr: name}
	}

	return d.Set(i, value)
}

// IsSet reports whether the attribute was assigned on this instance. An
// attribute that merely has a default is not set.
func (i *Instance) IsSet(name string) bool {
	_, ok := i.values[name]

	return ok
}

// StoredValue returns the assigned value under the attribute name. It
// implements field.Instance; use Get for default-aware reads.
func (i *Instance) StoredValue(name string) (any, bool) {
	v, ok := i.values[name]

	return v, ok
}

// StoreValue stores an already coerced value under the attribute name.
// It implements field.Instance; use Set for coercing writes.
func (i *Instance) StoreValue(name string, value any) {
	i.values[name] = value
}
