// Package schema provides YAML declarations for structure types:
// parsing, validation, and construction.
//
// YAML is a first-class feature that lets a team declare its record
// types once and regenerate typed accessors deterministically.
//
// # Key capabilities
//
//   - Declare structures and their fields in YAML
//   - Shorthand `attr: kind` entries next to full field declarations
//   - Defaults coerced at declaration time, including `default: null`
//   - Per-field text encodings by IANA name
//   - Coded diagnostics with did-you-mean kind suggestions
//   - Custom kinds through registry builders
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	structures:
//	  - name: User
//	    fields:
//	      # shorthand: attribute name to kind
//	      - age: integer
//	      # full form
//	      - name: nickname
//	        kind: text
//	        encoding: UTF-8
//	        default: anonymous
//	      - name: tags
//	        kind: set
//	        default: [665, 666, 667]
//
// A field entry is either a single-pair mapping `attr: kind` or a full
// mapping with `name`, `kind` and the optional `default` and `encoding`
// keys. Because the full-form keys decide which shape an entry takes,
// they are reserved and cannot be used as attribute names. Field order
// in the file is declaration order.
//
// # Defaults
//
// A declared default passes the kind's coercion when the structure type
// is built, so an invalid default fails deterministically at build time,
// not at first read. `default: null` declares a nil default, which is
// different from omitting the key.
//
// # Custom kinds
//
// The registry maps kind names to builders. Registering a builder under
// a new name makes that kind declarable in schema files:
//
//	registry.Add("upper", func(spec schema.FieldSpec) (field.Field, error) {
//		fn, err := field.Adapt(strings.ToUpper)
//		if err != nil {
//			return nil, err
//		}
//
//		return field.New(fn, spec.DeclaredDefault())
//	})
package schema
