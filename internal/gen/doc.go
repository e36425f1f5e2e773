// Package gen emits Go source for declared structures.
//
// Generation uses text/template + go/format. Each structure becomes one
// file carrying:
//   - the package-level structure type declaration
//   - a typed wrapper struct with constructors
//   - typed getters, coercing setters and is-set helpers, per the
//     selected feature flags
//
// Output is deterministic: the same plan and config produce the same
// bytes, so generated files can be committed and diffed.
package gen
