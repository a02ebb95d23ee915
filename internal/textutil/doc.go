// Package textutil provides the text primitives shared by transcript indexing
// and phrase search.
//
// The primary use cases are:
//   - Normalizing transcript words and query words to a comparable form
//   - Computing the positional character distance between equal-length words
//   - Sanitizing report file names for safe filesystem use
//
// Normalization lowercases text and removes every rune that is not a letter,
// digit, or whitespace. Distance is a Hamming distance over runes and is only
// defined for strings of equal length; callers compare lengths first.
package textutil
