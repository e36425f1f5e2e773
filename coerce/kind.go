package coerce

import (
	"bitbucket.org/creachadair/stringset"
	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInteger
	KindFloat
	KindDecimal
	KindBoolean
	KindBytes
	KindText
	KindList
	KindTuple
	KindSet
	KindFrozenSet
	KindDict

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// kindNames maps each kind to the name used in schema files.
var kindNames map[KindEnum]string

// namedKinds is the reverse of kindNames.
var namedKinds map[string]KindEnum

func init() {
	kindNames = map[KindEnum]string{
		KindInteger:   "integer",
		KindFloat:     "float",
		KindDecimal:   "decimal",
		KindBoolean:   "boolean",
		KindBytes:     "bytes",
		KindText:      "text",
		KindList:      "list",
		KindTuple:     "tuple",
		KindSet:       "set",
		KindFrozenSet: "frozenset",
		KindDict:      "dict",
	}

	namedKinds = make(map[string]KindEnum, len(kindNames))
	for kind, name := range kindNames {
		namedKinds[name] = kind
	}
}

// Name returns the schema name of the kind ("integer", "set", ...).
// It is distinct from String, which renders the Go constant name.
func (k KindEnum) Name() string {
	return kindNames[k]
}

// Func returns the built-in coercion function of the kind.
// Text kinds use the UTF-8 codec; use TextEncoding for other codecs.
func (k KindEnum) Func() Func {
	switch k {
	default:
		return nil
	case KindInteger:
		return Int
	case KindFloat:
		return Float
	case KindDecimal:
		return Decimal
	case KindBoolean:
		return Bool
	case KindBytes:
		return Bytes
	case KindText:
		return Text
	case KindList:
		return ToList
	case KindTuple:
		return ToTuple
	case KindSet:
		return ToSet
	case KindFrozenSet:
		return ToFrozenSet
	case KindDict:
		return ToDict
	}
}

// Kind looks a kind up by its schema name.
func Kind(name string) (KindEnum, bool) {
	k, ok := namedKinds[name]
	return k, ok
}

// KindNames returns the schema names of all kinds, sorted.
func KindNames() []string {
	return kindNameSet().Elements()
}

func kindNameSet() stringset.Set {
	return stringset.FromKeys(namedKinds)
}

// KindOf classifies an already coerced value. It returns the zero KindEnum
// for values no built-in coercion produces.
func KindOf(v any) KindEnum {
	switch v.(type) {
	default:
		return 0
	case int64:
		return KindInteger
	case float64:
		return KindFloat
	case decimal.Decimal:
		return KindDecimal
	case bool:
		return KindBoolean
	case []byte:
		return KindBytes
	case string:
		return KindText
	case List:
		return KindList
	case Tuple:
		return KindTuple
	case Set:
		return KindSet
	case FrozenSet:
		return KindFrozenSet
	case Dict:
		return KindDict
	}
}
