// Package match provides name normalization, Levenshtein distance calculation,
// and candidate ranking for did-you-mean suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores known names against an input
//   - Suggest: picks the names worth offering as corrections
package match
