package search

import "scribe/internal/transcript"

// Default engine settings.
const (
	DefaultMaxSuggestions      = 5
	DefaultSuggestionThreshold = 3
)

// Options are the explicit settings passed to every engine call.
type Options struct {
	// MaxSuggestions caps the ranked suggestions returned per failed search.
	MaxSuggestions int
	// SuggestionThreshold is the largest total distance a candidate may have.
	SuggestionThreshold int
	// AllOccurrences makes single-word mode collect every equal token instead
	// of stopping at the first one.
	AllOccurrences bool
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		MaxSuggestions:      DefaultMaxSuggestions,
		SuggestionThreshold: DefaultSuggestionThreshold,
	}
}

// Match is one confirmed occurrence of a query.
type Match struct {
	Phrase        string
	StartTime     float64
	FormattedTime string
	// Position is the index of the first matched word among the
	// transcript's non-punctuation tokens.
	Position int
}

// Candidate is a same-length alternative offered when an exact match fails.
type Candidate struct {
	Text     string
	Distance int
}

// Result is the outcome of one engine scan.
type Result struct {
	Query   Query
	Matches []Match
	// Candidates are the raw near-misses in scan order. They are only
	// populated when Matches is empty.
	Candidates []Candidate
}

// Found reports whether the scan produced at least one match.
func (r Result) Found() bool {
	return len(r.Matches) > 0
}

func newMatch(q Query, tok transcript.Token, position int) Match {
	return Match{
		Phrase:        q.Phrase(),
		StartTime:     tok.StartTime,
		FormattedTime: transcript.FormatClock(tok.StartTime),
		Position:      position,
	}
}
