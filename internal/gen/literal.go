package gen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/internal/plan"
)

// fieldCtors maps each kind to its constructor in the field package.
var fieldCtors = map[coerce.KindEnum]string{
	coerce.KindInteger:   "Integer",
	coerce.KindFloat:     "Float",
	coerce.KindDecimal:   "Decimal",
	coerce.KindBoolean:   "Boolean",
	coerce.KindBytes:     "Bytes",
	coerce.KindText:      "Text",
	coerce.KindList:      "List",
	coerce.KindTuple:     "Tuple",
	coerce.KindSet:       "Set",
	coerce.KindFrozenSet: "FrozenSet",
	coerce.KindDict:      "Dict",
}

// typeDecl renders the package-level structure type declaration as a
// MustAdd chain, one field per line.
func typeDecl(sp *plan.StructurePlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "structure.NewType(%s)", strconv.Quote(sp.Name))

	for i := range sp.Fields {
		fp := &sp.Fields[i]
		fmt.Fprintf(&b, ".\n\tMustAdd(%s, field.Must(%s))", strconv.Quote(fp.Attr), fieldCtor(fp))
	}

	return b.String()
}

// fieldCtor renders the field constructor call for one field plan.
func fieldCtor(fp *plan.FieldPlan) string {
	def := "field.NoDefault"
	if fp.HasDefault {
		def = valueLiteral(fp.Default)
	}

	if fp.Kind == coerce.KindText && fp.Encoding != "" {
		return fmt.Sprintf("field.TextEnc(%s, %s)", def, strconv.Quote(fp.Encoding))
	}

	return fmt.Sprintf("field.%s(%s)", fieldCtors[fp.Kind], def)
}

// valueLiteral renders a YAML-decoded default value as a Go literal.
// Map keys are sorted so output is deterministic.
func valueLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, valueLiteral(item))
		}

		return "[]any{" + strings.Join(items, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, strconv.Quote(k)+": "+valueLiteral(t[k]))
		}

		return "map[string]any{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%#v", t)
	}
}
