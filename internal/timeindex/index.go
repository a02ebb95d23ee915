package timeindex

import "scribe/internal/speakers"

// Index is the combined phrase → speaker → times record of a run.
type Index struct {
	phrases *OrderedMap[string, *OrderedMap[string, []string]]
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{phrases: NewOrderedMap[string, *OrderedMap[string, []string]]()}
}

// Record stores the attribution of one phrase, replacing any earlier entry
// for the same phrase. A replaced phrase keeps its original position.
func (x *Index) Record(a speakers.Attribution) {
	if a.MentionCount() == 0 {
		return
	}
	bySpeaker := NewOrderedMap[string, []string]()
	for _, s := range a.Speakers {
		times := append([]string(nil), s.Times...)
		if prev, ok := bySpeaker.Get(s.Speaker); ok {
			times = append(prev, times...)
		}
		bySpeaker.Set(s.Speaker, times)
	}
	x.phrases.Set(a.Phrase, bySpeaker)
}

// Phrases returns the recorded phrases in insertion order.
func (x *Index) Phrases() []string {
	return x.phrases.Keys()
}

// Len returns the number of recorded phrases.
func (x *Index) Len() int {
	return x.phrases.Len()
}

// Has reports whether phrase was recorded.
func (x *Index) Has(phrase string) bool {
	_, ok := x.phrases.Get(phrase)
	return ok
}

// Speakers returns the speakers of phrase in first-seen order.
func (x *Index) Speakers(phrase string) []string {
	bySpeaker, ok := x.phrases.Get(phrase)
	if !ok {
		return nil
	}
	return bySpeaker.Keys()
}

// Times returns the formatted times a speaker said phrase.
func (x *Index) Times(phrase, speaker string) []string {
	bySpeaker, ok := x.phrases.Get(phrase)
	if !ok {
		return nil
	}
	times, _ := bySpeaker.Get(speaker)
	return append([]string(nil), times...)
}

// MentionCount is the number of times phrase was said across all speakers.
func (x *Index) MentionCount(phrase string) int {
	bySpeaker, ok := x.phrases.Get(phrase)
	if !ok {
		return 0
	}
	n := 0
	for _, speaker := range bySpeaker.Keys() {
		times, _ := bySpeaker.Get(speaker)
		n += len(times)
	}
	return n
}

// Entries returns a snapshot of the index in insertion order.
func (x *Index) Entries() []speakers.Attribution {
	out := make([]speakers.Attribution, 0, x.phrases.Len())
	for _, phrase := range x.phrases.Keys() {
		entry := speakers.Attribution{Phrase: phrase}
		for _, speaker := range x.Speakers(phrase) {
			entry.Speakers = append(entry.Speakers, speakers.SpeakerTimes{
				Speaker: speaker,
				Times:   x.Times(phrase, speaker),
			})
		}
		out = append(out, entry)
	}
	return out
}
