package plan

import (
	"github.com/i--storm/structures/coerce"
)

// Plan is the resolved input of code generation. Everything the
// generator emits is named and typed here; no naming decisions are
// made downstream.
type Plan struct {
	// Package is the Go package name of the generated files.
	Package string

	// Structures are the structure plans in declaration order.
	Structures []StructurePlan
}

// StructurePlan is one declared structure resolved for generation.
type StructurePlan struct {
	// Name is the structure name as declared in the schema.
	Name string

	// TypeName is the exported Go identifier of the generated wrapper
	// type. Unique within the package.
	TypeName string

	// VarName is the package-level variable holding the structure
	// type declaration. Unique within the package.
	VarName string

	// Fields are the field plans in declaration order.
	Fields []FieldPlan
}

// FieldPlan is one declared field resolved for generation.
type FieldPlan struct {
	// Attr is the attribute name as declared in the schema.
	Attr string

	// Accessor is the exported Go identifier shared by the generated
	// accessors: the getter is Accessor itself, the companions are
	// Set<Accessor> and Has<Accessor>. Unique within the structure.
	Accessor string

	// GoType is the Go type the typed getter returns.
	GoType string

	// Kind the field was declared with.
	Kind coerce.KindEnum

	// HasDefault records whether the declaration carried a default,
	// including an explicit null.
	HasDefault bool

	// Default is the declared default value, before coercion.
	Default any

	// Encoding is the IANA codec name for text fields, empty for the
	// UTF-8 default and for every other kind.
	Encoding string
}

// goTypes maps each kind to the Go type its coerced values carry.
var goTypes = map[coerce.KindEnum]string{
	coerce.KindInteger:   "int64",
	coerce.KindFloat:     "float64",
	coerce.KindDecimal:   "decimal.Decimal",
	coerce.KindBoolean:   "bool",
	coerce.KindBytes:     "[]byte",
	coerce.KindText:      "string",
	coerce.KindList:      "coerce.List",
	coerce.KindTuple:     "coerce.Tuple",
	coerce.KindSet:       "coerce.Set",
	coerce.KindFrozenSet: "coerce.FrozenSet",
	coerce.KindDict:      "coerce.Dict",
}

// GoType returns the Go type carried by values of the kind, or false
// for kinds that have no generated representation.
func GoType(kind coerce.KindEnum) (string, bool) {
	t, ok := goTypes[kind]

	return t, ok
}
