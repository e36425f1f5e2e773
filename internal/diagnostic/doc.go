// Package diagnostic provides structured warnings and errors for schema
// validation.
//
// Key capabilities:
//   - Coded diagnostics tied to a structure and field declaration
//   - Did-you-mean suggestions for misspelled kind names
//   - Severity-aware rendering for CLI output
package diagnostic
