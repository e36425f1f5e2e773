package options

import "bitbucket.org/creachadair/stringset"

type FeatureEnum int

const (
	FeatureTypedAccessors   FeatureEnum = 1 << iota // typed getter per declared field, zero value on unset/error
	FeatureMustConstructors                         // FromMap constructor plus a panicking Must variant
	FeatureKindComments                             // kind and default documented on every accessor
	FeatureIsSetHelpers                             // Has<Field> helpers reporting whether the attribute was assigned
	FeatureZeroLog                                  // LogTo method dumping the instance to a zerolog event

	FeatureAll  FeatureEnum = (1 << iota) - 1 // all features combined
	FeatureNone FeatureEnum = 0               // no features selected

	// FeatureDefault is what generation uses when no features are named.
	FeatureDefault = FeatureTypedAccessors | FeatureMustConstructors | FeatureKindComments | FeatureIsSetHelpers
)

var featureNames map[string]FeatureEnum

func init() {
	featureNames = map[string]FeatureEnum{
		"typed-accessors":   FeatureTypedAccessors,
		"must-constructors": FeatureMustConstructors,
		"kind-comments":     FeatureKindComments,
		"isset-helpers":     FeatureIsSetHelpers,
		"zerolog":           FeatureZeroLog,
		"all":               FeatureAll,
		"none":              FeatureNone,
		"default":           FeatureDefault,
	}
}

// Has reports whether all of the given flags are present.
func (f FeatureEnum) Has(flags FeatureEnum) bool {
	return f&flags == flags
}

// ParseFeature looks a feature up by its flag name.
func ParseFeature(name string) (FeatureEnum, bool) {
	f, ok := featureNames[name]

	return f, ok
}

// FeatureNames returns every recognized flag name, sorted.
func FeatureNames() []string {
	return stringset.FromKeys(featureNames).Elements()
}
