package schema

import (
	"fmt"

	"github.com/i--storm/structures/structure"

	"github.com/i--storm/structures/internal/diagnostic"
)

// Build validates the schema file and constructs a structure type per
// declaration, in file order. Declared defaults pass their coercion here,
// at declaration time. When validation reports errors nothing is built
// and the diagnostics are wrapped into the returned error.
func (l *Loader) Build(sf *SchemaFile) ([]*structure.Type, *diagnostic.Diagnostics, error) {
	diags := l.Validate(sf)
	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("schema is invalid: %w", diags.Error())
	}

	types := make([]*structure.Type, 0, len(sf.Structures))

	for i := range sf.Structures {
		st, err := l.buildStructure(&sf.Structures[i])
		if err != nil {
			return nil, diags, err
		}

		types = append(types, st)
	}

	return types, diags, nil
}

func (l *Loader) buildStructure(spec *StructureSpec) (*structure.Type, error) {
	st := structure.NewType(spec.Name)

	for i := range spec.Fields {
		fs := spec.Fields[i]

		// validation vouched for the kind
		builder, _ := l.registry.Get(fs.Kind)

		f, err := builder(fs)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", spec.Name, fs.Name, err)
		}

		if err := st.Add(fs.Name, f); err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", spec.Name, fs.Name, err)
		}
	}

	l.log.Debug().
		Str("structure", spec.Name).
		Int("fields", st.Len()).
		Msg("structure type built")

	return st, nil
}
