package search

import (
	"strings"

	"scribe/internal/textutil"
)

// Query is a parsed search request.
type Query struct {
	// Text is the raw input as supplied by the caller.
	Text string
	// Words are the normalized whitespace-separated query words.
	Words []string
}

// ParseQuery normalizes text into query words.
func ParseQuery(text string) Query {
	return Query{Text: text, Words: textutil.NormalizeWords(text)}
}

// IsPhrase reports whether the query has more than one word.
func (q Query) IsPhrase() bool {
	return len(q.Words) > 1
}

// Empty reports whether the query has no searchable words.
func (q Query) Empty() bool {
	return len(q.Words) == 0
}

// Phrase returns the normalized query words joined by single spaces. It is
// the key results are recorded under.
func (q Query) Phrase() string {
	return strings.Join(q.Words, " ")
}
