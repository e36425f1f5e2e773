package schema

import (
	"fmt"

	"bitbucket.org/creachadair/stringset"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/internal/common"
	"github.com/i--storm/structures/internal/diagnostic"
	"github.com/i--storm/structures/internal/match"
)

// Validate structurally validates a schema file: names, kinds, encodings
// and declared defaults. It never builds structure types; Build does,
// and refuses while any of these diagnostics is an error.
func (l *Loader) Validate(sf *SchemaFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if common.IsEmpty(sf.Structures) {
		res.AddWarning("empty_schema", "schema declares no structures", "", "")
		return res
	}

	seen := stringset.New()

	for i := range sf.Structures {
		l.validateStructure(res, &sf.Structures[i], &seen)
	}

	return res
}

func (l *Loader) validateStructure(res *diagnostic.Diagnostics, spec *StructureSpec, seen *stringset.Set) {
	if spec.Name == "" {
		res.AddError("missing_structure_name", "structure declares no name", "", "")
		return
	}

	if !seen.Add(spec.Name) {
		res.AddError("duplicate_structure", fmt.Sprintf("structure %q declared twice", spec.Name), spec.Name, "")
		return
	}

	if common.IsEmpty(spec.Fields) {
		res.AddWarning("no_fields", fmt.Sprintf("structure %q declares no fields", spec.Name), spec.Name, "")
		return
	}

	seenFields := stringset.New()

	for i := range spec.Fields {
		l.validateField(res, spec.Name, &spec.Fields[i], &seenFields)
	}
}

// validateField checks one field declaration and stops at its first
// problem: later checks assume the earlier ones passed.
func (l *Loader) validateField(res *diagnostic.Diagnostics, structure string, spec *FieldSpec, seen *stringset.Set) {
	if spec.Name == "" {
		res.AddError("missing_field_name", "field declares no name", structure, "")
		return
	}

	if reservedFieldNames.Contains(spec.Name) {
		res.AddError("reserved_field_name",
			fmt.Sprintf("%q is a declaration key and cannot name an attribute", spec.Name),
			structure, spec.Name)

		return
	}

	if !seen.Add(spec.Name) {
		res.AddError("duplicate_field", fmt.Sprintf("field %q declared twice", spec.Name), structure, spec.Name)
		return
	}

	if spec.Kind == "" {
		res.AddError("missing_kind", fmt.Sprintf("field %q declares no kind", spec.Name), structure, spec.Name)
		return
	}

	builder, ok := l.registry.Get(spec.Kind)
	if !ok {
		res.AddError("unknown_kind", fmt.Sprintf("unknown kind %q", spec.Kind), structure, spec.Name,
			match.Suggest(spec.Kind, l.registry.Names(), match.DefaultMaxSuggestions)...)

		return
	}

	if spec.Encoding != "" {
		if spec.Kind != coerce.KindText.Name() {
			res.AddError("encoding_non_text",
				fmt.Sprintf("encoding declared for kind %q, only text fields decode", spec.Kind),
				structure, spec.Name)

			return
		}

		if _, err := coerce.TextEncoding(spec.Encoding); err != nil {
			res.AddError("unknown_encoding", fmt.Sprintf("unknown encoding %q", spec.Encoding), structure, spec.Name)
			return
		}
	}

	if spec.HasDefault {
		if _, err := builder(*spec); err != nil {
			res.AddError("invalid_default", fmt.Sprintf("default value rejected: %v", err), structure, spec.Name)
		}
	}
}
