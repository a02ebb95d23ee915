package api

import (
	"fmt"

	"scribe/internal/config"
	"scribe/internal/search"
	"scribe/internal/speakers"
	"scribe/internal/timeindex"
	"scribe/internal/transcript"
)

// Analyzer runs searches against one transcript index.
type Analyzer struct {
	engine *search.Engine
	rules  []speakers.Introduction
	bound  int
}

// NewAnalyzer builds an analyzer from the search and speaker settings of cfg.
// A nil cfg uses the engine and introduction defaults.
func NewAnalyzer(cfg *config.Config) *Analyzer {
	if cfg == nil {
		return &Analyzer{
			engine: search.NewEngine(search.DefaultOptions()),
			rules:  speakers.DefaultIntroductions(),
			bound:  speakers.DefaultNameIntroductionWordBound,
		}
	}
	return &Analyzer{
		engine: search.NewEngine(cfg.SearchOptions()),
		rules:  cfg.Speakers.Introductions,
		bound:  cfg.Speakers.NameIntroductionWordBound,
	}
}

// Engine returns the configured search engine.
func (a *Analyzer) Engine() *search.Engine {
	return a.engine
}

// Names identifies speaker names introduced in idx.
func (a *Analyzer) Names(idx *transcript.Index) speakers.Names {
	return speakers.IdentifyNames(idx, a.rules, a.bound)
}

// Search runs one round for text.
func (a *Analyzer) Search(idx *transcript.Index, text string) (SearchResult, error) {
	q := search.ParseQuery(text)
	if q.Empty() {
		return SearchResult{}, fmt.Errorf("search %q: %w", text, search.ErrEmptyQuery)
	}
	return a.Result(idx, a.Names(idx), a.engine.Find(idx, q))
}

// Result converts an engine result. Matches are grouped by speaker; a miss
// carries the ranked suggestions.
func (a *Analyzer) Result(idx *transcript.Index, names speakers.Names, res search.Result) (SearchResult, error) {
	out := SearchResult{Query: res.Query.Phrase()}
	if !res.Found() {
		out.Status = StatusNoMatch
		out.Suggestions = FromCandidates(a.engine.Suggest(res))
		return out, nil
	}

	attributions, err := speakers.Attribute(res.Matches, idx, names)
	if err != nil {
		return SearchResult{}, err
	}
	out.Status = StatusFound
	out.Matches = FromMatches(res.Matches, idx, names)
	if len(attributions) > 0 {
		entry := FromAttribution(attributions[0])
		out.Mentions = &entry
	}
	return out, nil
}

// BuildIndex searches every query then every watch word and folds the
// matches into one time index. Queries without a match are reported in
// Missing.
func (a *Analyzer) BuildIndex(idx *transcript.Index, queries, watchWords []string) (*timeindex.Index, []string, error) {
	builder := timeindex.NewBuilder(a.engine, idx, a.Names(idx))
	var missing []string
	for _, text := range queries {
		if search.ParseQuery(text).Empty() {
			continue
		}
		res, err := builder.Search(text)
		if err != nil {
			return nil, nil, fmt.Errorf("index query %q: %w", text, err)
		}
		if !res.Found() {
			missing = append(missing, res.Query.Phrase())
		}
	}
	if err := builder.AddWatchList(watchWords); err != nil {
		return nil, nil, err
	}
	return builder.Index(), missing, nil
}

// Describe returns the speakers and speaker turns of idx.
func (a *Analyzer) Describe(idx *transcript.Index) ([]Speaker, []Segment) {
	names := a.Names(idx)
	return FromSpeakers(idx, names), FromSegments(idx, names)
}
