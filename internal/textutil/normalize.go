package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and strips punctuation. Whitespace is preserved so
// multi-word input can still be split afterwards.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeWords splits text on whitespace and normalizes each word. Words that
// normalize to nothing (bare punctuation) are dropped.
func NormalizeWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if w := Normalize(field); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// IsPunctuationOnly reports whether text has no letters or digits.
func IsPunctuationOnly(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// RuneLen returns the number of runes in s. Distance and the same-length
// suggestion rule count characters, not bytes.
func RuneLen(s string) int {
	return len([]rune(s))
}
