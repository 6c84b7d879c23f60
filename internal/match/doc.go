// Package match suggests close names for misspelled configuration values,
// such as output function names or language codes.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by distance
package match
