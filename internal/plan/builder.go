package plan

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/internal/match"
	"github.com/i--storm/structures/schema"
)

// Options configure plan building.
type Options struct {
	// Package is the Go package name of the generated files.
	Package string
}

// reservedMethods are emitted on every generated type and can never
// serve as field accessors.
var reservedMethods = []string{"Instance", "LogTo"}

// Build resolves a validated schema file into a generation plan. Every
// declared name gets a unique exported Go identifier; collisions fall
// back to numeric suffixes in declaration order.
func Build(sf *schema.SchemaFile, opts Options) (*Plan, error) {
	if sf == nil {
		return nil, errors.New("schema file is nil")
	}

	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", opts.Package)
	}

	p := &Plan{Package: opts.Package}

	// One namespace for everything declared at package level: type
	// names, type variables and constructors.
	names := make(map[string]struct{})

	for i := range sf.Structures {
		sp, err := buildStructure(&sf.Structures[i], names)
		if err != nil {
			return nil, err
		}

		p.Structures = append(p.Structures, sp)
	}

	return p, nil
}

func buildStructure(spec *schema.StructureSpec, names map[string]struct{}) (StructurePlan, error) {
	typeName := claimTypeName(GoName(spec.Name), names)

	sp := StructurePlan{
		Name:     spec.Name,
		TypeName: typeName,
		VarName:  typeName + "Type",
	}

	accessors := make(map[string]struct{})
	for _, m := range reservedMethods {
		accessors[m] = struct{}{}
	}

	for i := range spec.Fields {
		fp, err := buildField(&spec.Fields[i], spec.Name, accessors)
		if err != nil {
			return StructurePlan{}, err
		}

		sp.Fields = append(sp.Fields, fp)
	}

	return sp, nil
}

func buildField(spec *schema.FieldSpec, structure string, accessors map[string]struct{}) (FieldPlan, error) {
	kind, ok := coerce.Kind(spec.Kind)
	if !ok {
		return FieldPlan{}, fmt.Errorf("field %s.%s: kind %q has no generated representation",
			structure, spec.Name, spec.Kind)
	}

	return FieldPlan{
		Attr:       spec.Name,
		Accessor:   claimAccessor(GoName(spec.Name), accessors),
		GoType:     goTypes[kind],
		Kind:       kind,
		HasDefault: spec.HasDefault,
		Default:    spec.Default,
		Encoding:   spec.Encoding,
	}, nil
}

// claimTypeName reserves the type name together with every identifier
// derived from it, so generated declarations cannot collide no matter
// which features are enabled.
func claimTypeName(name string, taken map[string]struct{}) string {
	return claimDerived(name, taken, typeCompanions)
}

// claimAccessor reserves the accessor identifier together with its
// Set and Has companions.
func claimAccessor(name string, taken map[string]struct{}) string {
	return claimDerived(name, taken, accessorCompanions)
}

func typeCompanions(name string) []string {
	return []string{name, name + "Type", "New" + name, "New" + name + "From", "MustNew" + name}
}

func accessorCompanions(name string) []string {
	return []string{name, "Set" + name, "Has" + name}
}

func claimDerived(name string, taken map[string]struct{}, companions func(string) []string) string {
	if tryClaim(companions(name), taken) {
		return name
	}

	stem := NewStem(name, nil)

	for {
		candidate := stem.Next()
		if tryClaim(companions(candidate), taken) {
			return candidate
		}
	}
}

func tryClaim(names []string, taken map[string]struct{}) bool {
	for _, n := range names {
		if _, ok := taken[n]; ok {
			return false
		}
	}

	for _, n := range names {
		taken[n] = struct{}{}
	}

	return true
}

// GoName derives an exported Go identifier from a declared name.
// Tokens are title-cased and concatenated, runes Go identifiers cannot
// carry are dropped, and a name left empty or starting with a digit
// gets an X prefix: "order_id" becomes "OrderId", "2fast" becomes
// "X2fast".
func GoName(name string) string {
	var b strings.Builder

	for _, tok := range match.TokenizeIdent(name) {
		b.WriteString(upperFirst(tok))
	}

	cleaned := identRunes(b.String())
	if cleaned == "" {
		return "X"
	}

	if unicode.IsDigit([]rune(cleaned)[0]) {
		return "X" + cleaned
	}

	return cleaned
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func identRunes(s string) string {
	var b strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
