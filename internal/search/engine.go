package search

import (
	"strings"

	"scribe/internal/textutil"
	"scribe/internal/transcript"
)

// Engine runs word and phrase scans with a fixed set of options.
type Engine struct {
	opts Options
}

// NewEngine creates an engine. Non-positive settings fall back to defaults.
func NewEngine(opts Options) *Engine {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.SuggestionThreshold <= 0 {
		opts.SuggestionThreshold = DefaultSuggestionThreshold
	}
	return &Engine{opts: opts}
}

// Options returns the engine's effective settings.
func (e *Engine) Options() Options {
	return e.opts
}

// Find scans idx for q. An empty query yields an empty result.
func (e *Engine) Find(idx *transcript.Index, q Query) Result {
	if idx == nil || q.Empty() {
		return Result{Query: q}
	}
	var res Result
	if q.IsPhrase() {
		res = e.findPhrase(idx, q)
	} else {
		res = e.findWord(idx, q)
	}
	if res.Found() {
		res.Candidates = nil
	}
	return res
}

// Suggest ranks a failed result's candidates.
func (e *Engine) Suggest(res Result) []Candidate {
	if res.Found() {
		return nil
	}
	return Rank(res.Query, res.Candidates, e.opts.MaxSuggestions)
}

func (e *Engine) findWord(idx *transcript.Index, q Query) Result {
	res := Result{Query: q}
	word := q.Words[0]
	for i := 0; i < idx.WordCount(); i++ {
		tok := idx.Word(i)
		if tok.Normalized == word {
			res.Matches = append(res.Matches, newMatch(q, tok, i))
			if !e.opts.AllOccurrences {
				break
			}
			continue
		}
		if !textutil.SameLength(tok.Normalized, word) {
			continue
		}
		distance, err := textutil.Distance(tok.Normalized, word)
		if err != nil || distance > e.opts.SuggestionThreshold {
			continue
		}
		res.Candidates = append(res.Candidates, Candidate{Text: tok.Normalized, Distance: distance})
	}
	return res
}

// findPhrase visits every word once as a potential anchor. A failed
// verification resumes at the following word; a confirmed match resumes
// after its last word so occurrences never overlap.
func (e *Engine) findPhrase(idx *transcript.Index, q Query) Result {
	res := Result{Query: q}
	first := q.Words[0]
	for i := 0; i < idx.WordCount(); {
		tok := idx.Word(i)
		if tok.Normalized == first && verifyPhrase(idx, q.Words, i) {
			res.Matches = append(res.Matches, newMatch(q, tok, i))
			i += len(q.Words)
			continue
		}
		if textutil.SameLength(tok.Normalized, first) {
			if c, ok := e.nearMiss(idx, q.Words, i); ok {
				res.Candidates = append(res.Candidates, c)
			}
		}
		i++
	}
	return res
}

func verifyPhrase(idx *transcript.Index, words []string, anchor int) bool {
	if anchor+len(words) > idx.WordCount() {
		return false
	}
	for j := 1; j < len(words); j++ {
		if idx.Word(anchor+j).Normalized != words[j] {
			return false
		}
	}
	return true
}

// nearMiss accumulates the distance of the len(words) tokens starting at
// anchor. It gives up on the first length mismatch or once the running total
// exceeds the threshold.
func (e *Engine) nearMiss(idx *transcript.Index, words []string, anchor int) (Candidate, bool) {
	if anchor+len(words) > idx.WordCount() {
		return Candidate{}, false
	}
	parts := make([]string, 0, len(words))
	total := 0
	for j, want := range words {
		got := idx.Word(anchor + j).Normalized
		if !textutil.SameLength(got, want) {
			return Candidate{}, false
		}
		distance, err := textutil.Distance(got, want)
		if err != nil {
			return Candidate{}, false
		}
		total += distance
		if total > e.opts.SuggestionThreshold {
			return Candidate{}, false
		}
		parts = append(parts, got)
	}
	if total == 0 {
		return Candidate{}, false
	}
	return Candidate{Text: strings.Join(parts, " "), Distance: total}, true
}
