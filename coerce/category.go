package coerce

type CategoryEnum int

const (
	CategoryNumeric   CategoryEnum = 1 << iota // integer, float and decimal: numeric value kinds
	CategoryTextual                            // text and bytes: character and byte sequence kinds
	CategoryBoolean                            // boolean: truthiness kind
	CategoryScalar                             // kinds whose default is coerced once, at declaration time
	CategoryContainer                          // kinds whose default is re-materialized on every unset read
	CategoryOrdered                            // list and tuple: element order is preserved
	CategoryUnique                             // set and frozenset: duplicate elements are dropped
	CategoryPairwise                           // dict: input is a mapping or an iterable of key/value pairs

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

var kindCategories map[KindEnum]CategoryEnum

func init() {
	kindCategories = map[KindEnum]CategoryEnum{
		KindInteger:   CategoryScalar | CategoryNumeric,
		KindFloat:     CategoryScalar | CategoryNumeric,
		KindDecimal:   CategoryScalar | CategoryNumeric,
		KindBoolean:   CategoryScalar | CategoryBoolean,
		KindBytes:     CategoryScalar | CategoryTextual,
		KindText:      CategoryScalar | CategoryTextual,
		KindList:      CategoryContainer | CategoryOrdered,
		KindTuple:     CategoryContainer | CategoryOrdered,
		KindSet:       CategoryContainer | CategoryUnique,
		KindFrozenSet: CategoryContainer | CategoryUnique,
		KindDict:      CategoryContainer | CategoryPairwise,
	}
}

// Category returns the category flags of the kind, CategoryNone for
// invalid kinds.
func (k KindEnum) Category() CategoryEnum {
	return kindCategories[k]
}

// Has reports whether all of the given flags are present.
func (c CategoryEnum) Has(flags CategoryEnum) bool {
	return c&flags == flags
}

// IsContainer reports whether the kind follows the container default
// policy (fresh value per unset read).
func (k KindEnum) IsContainer() bool {
	return k.Category().Has(CategoryContainer)
}
