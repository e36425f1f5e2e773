package schema

import (
	"fmt"

	"bitbucket.org/creachadair/stringset"
	"gopkg.in/yaml.v3"

	"github.com/i--storm/structures/field"
)

// SchemaFile represents the root of a YAML schema declaration file.
type SchemaFile struct {
	// Structures is the list of declared structure types.
	Structures []StructureSpec `yaml:"structures"`
}

// StructureSpec declares one structure type.
type StructureSpec struct {
	// Name of the structure type.
	Name string `yaml:"name"`

	// Fields declares the attributes in declaration order.
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec declares one field.
// YAML formats supported:
//   - Shorthand single-pair mapping: `age: integer`
//   - Full mapping: `name`, `kind`, optional `default` and `encoding`
type FieldSpec struct {
	// Name is the attribute name.
	Name string

	// Kind is the registered kind name ("integer", "set", ...).
	Kind string

	// Default is the declared default value. It is meaningful only when
	// HasDefault is true: `default: null` declares a nil default, which
	// is not the same as omitting the key.
	Default any

	// HasDefault records whether the `default` key was present.
	HasDefault bool

	// Encoding is the IANA codec name for text fields.
	Encoding string
}

// reservedFieldNames are the keys of the full field form. An entry whose
// single pair uses one of them parses as a (partial) full form, so they
// cannot serve as attribute names; validation rejects them.
var reservedFieldNames = stringset.New("name", "kind", "default", "encoding")

// DeclaredDefault returns the declared default value, or field.NoDefault
// when the declaration omitted the `default` key. Registry builders pass
// it to field constructors.
func (f FieldSpec) DeclaredDefault() any {
	if !f.HasDefault {
		return field.NoDefault
	}

	return f.Default
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldSpec.
// A single-pair mapping with a non-reserved key is the shorthand form;
// everything else is the full form with strict keys.
func (f *FieldSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for field declaration, got %v", nodeKindName(node.Kind))
	}

	if isShorthand(node) {
		return f.unmarshalShorthand(node)
	}

	return f.unmarshalFull(node)
}

func isShorthand(node *yaml.Node) bool {
	if len(node.Content) != 2 {
		return false
	}

	var key string
	if err := node.Content[0].Decode(&key); err != nil {
		return false
	}

	return !reservedFieldNames.Contains(key)
}

// unmarshalShorthand parses `attr: kind`.
func (f *FieldSpec) unmarshalShorthand(node *yaml.Node) error {
	var spec FieldSpec

	if err := node.Content[0].Decode(&spec.Name); err != nil {
		return fmt.Errorf("invalid attribute name: %w", err)
	}

	if err := node.Content[1].Decode(&spec.Kind); err != nil {
		return fmt.Errorf("invalid kind for %q: %w", spec.Name, err)
	}

	*f = spec

	return nil
}

// unmarshalFull parses the `name`/`kind`/`default`/`encoding` form.
// Unknown keys are errors.
func (f *FieldSpec) unmarshalFull(node *yaml.Node) error {
	var spec FieldSpec

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("invalid field key: %w", err)
		}

		switch key {
		default:
			return fmt.Errorf("unknown field key %q (expected name, kind, default or encoding)", key)

		case "name":
			if err := valNode.Decode(&spec.Name); err != nil {
				return fmt.Errorf("invalid name: %w", err)
			}

		case "kind":
			if err := valNode.Decode(&spec.Kind); err != nil {
				return fmt.Errorf("invalid kind: %w", err)
			}

		case "default":
			if err := valNode.Decode(&spec.Default); err != nil {
				return fmt.Errorf("invalid default: %w", err)
			}

			spec.HasDefault = true

		case "encoding":
			if err := valNode.Decode(&spec.Encoding); err != nil {
				return fmt.Errorf("invalid encoding: %w", err)
			}
		}
	}

	*f = spec

	return nil
}

// MarshalYAML implements custom YAML marshaling for FieldSpec.
// Outputs the shorthand pair when only name and kind are declared,
// otherwise the full form with keys in canonical order.
func (f FieldSpec) MarshalYAML() (any, error) {
	if !f.HasDefault && f.Encoding == "" {
		return map[string]string{f.Name: f.Kind}, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, scalarNode("name"), scalarNode(f.Name))
	node.Content = append(node.Content, scalarNode("kind"), scalarNode(f.Kind))

	if f.Encoding != "" {
		node.Content = append(node.Content, scalarNode("encoding"), scalarNode(f.Encoding))
	}

	if f.HasDefault {
		var def yaml.Node
		if err := def.Encode(f.Default); err != nil {
			return nil, fmt.Errorf("cannot marshal default of %q: %w", f.Name, err)
		}

		node.Content = append(node.Content, scalarNode("default"), &def)
	}

	return node, nil
}

func scalarNode(s string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(s)

	return n
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	default:
		return fmt.Sprintf("kind %d", kind)
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
}
