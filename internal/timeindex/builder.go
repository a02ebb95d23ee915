package timeindex

import (
	"fmt"

	"scribe/internal/search"
	"scribe/internal/speakers"
	"scribe/internal/transcript"
)

// Builder folds search rounds against one transcript into an Index.
type Builder struct {
	engine *search.Engine
	source *transcript.Index
	names  speakers.Names
	index  *Index
}

// NewBuilder returns a builder over source. Speakers are named through names.
func NewBuilder(engine *search.Engine, source *transcript.Index, names speakers.Names) *Builder {
	if engine == nil {
		engine = search.NewEngine(search.DefaultOptions())
	}
	return &Builder{engine: engine, source: source, names: names, index: NewIndex()}
}

// Search runs one ad hoc query and records its matches. The result is
// returned so callers can offer suggestions when nothing was found.
func (b *Builder) Search(text string) (search.Result, error) {
	res := b.engine.Find(b.source, search.ParseQuery(text))
	if err := b.RecordMatches(res.Matches); err != nil {
		return res, err
	}
	return res, nil
}

// RecordMatches attributes matches and stores them in the index.
func (b *Builder) RecordMatches(matches []search.Match) error {
	attributions, err := speakers.Attribute(matches, b.source, b.names)
	if err != nil {
		return fmt.Errorf("record matches: %w", err)
	}
	for _, a := range attributions {
		b.index.Record(a)
	}
	return nil
}

// AddWatchList searches every watch word. Words without a match are omitted
// from the index.
func (b *Builder) AddWatchList(words []string) error {
	for _, word := range words {
		q := search.ParseQuery(word)
		if q.Empty() {
			continue
		}
		if _, err := b.Search(word); err != nil {
			return fmt.Errorf("watch word %q: %w", word, err)
		}
	}
	return nil
}

// Index returns the accumulated index.
func (b *Builder) Index() *Index {
	return b.index
}
