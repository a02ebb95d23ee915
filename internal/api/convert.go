package api

import (
	"scribe/internal/catalog"
	"scribe/internal/language"
	"scribe/internal/search"
	"scribe/internal/speakers"
	"scribe/internal/timeindex"
	"scribe/internal/transcript"
)

// FromEntry converts a catalog entry to its API representation.
func FromEntry(entry *catalog.Entry) Transcript {
	if entry == nil {
		return Transcript{}
	}
	dto := Transcript{
		ID:           entry.ID,
		JobName:      entry.JobName,
		LanguageCode: entry.LanguageCode,
		Language:     language.DisplayName(entry.LanguageCode),
		SpeakerCount: entry.SpeakerCount,
		WordCount:    entry.WordCount,
		SourcePath:   entry.SourcePath,
	}
	if !entry.ImportedAt.IsZero() {
		dto.ImportedAt = entry.ImportedAt.UTC().Format(dateTimeFormat)
	}
	if !entry.UpdatedAt.IsZero() {
		dto.UpdatedAt = entry.UpdatedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromEntries converts catalog entries into API DTOs.
func FromEntries(entries []*catalog.Entry) []Transcript {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Transcript, 0, len(entries))
	for _, entry := range entries {
		out = append(out, FromEntry(entry))
	}
	return out
}

// FromSpeakers lists the speakers of idx in first-appearance order.
func FromSpeakers(idx *transcript.Index, names speakers.Names) []Speaker {
	labels := idx.Speakers()
	out := make([]Speaker, 0, len(labels))
	for _, label := range labels {
		out = append(out, Speaker{Label: label, Name: names.Resolve(label)})
	}
	return out
}

// FromSegments converts the speaker turns of idx.
func FromSegments(idx *transcript.Index, names speakers.Names) []Segment {
	segments := idx.Segments()
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, Segment{
			Speaker:   names.Resolve(seg.Label),
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
			Span:      seg.Span(),
			Text:      seg.Text,
		})
	}
	return out
}

// FromMatches converts matches and resolves the speaker of each one.
func FromMatches(matches []search.Match, idx *transcript.Index, names speakers.Names) []Match {
	if len(matches) == 0 {
		return nil
	}
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		dto := Match{
			Phrase:    m.Phrase,
			Time:      m.FormattedTime,
			StartTime: m.StartTime,
			Position:  m.Position,
		}
		if label, ok := idx.SpeakerAt(m.StartTime); ok {
			dto.Speaker = names.Resolve(label)
		}
		out = append(out, dto)
	}
	return out
}

// FromCandidates numbers ranked suggestions starting at one.
func FromCandidates(candidates []search.Candidate) []Suggestion {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]Suggestion, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, Suggestion{Rank: i + 1, Text: c.Text, Distance: c.Distance})
	}
	return out
}

// FromAttribution converts one attributed phrase.
func FromAttribution(a speakers.Attribution) IndexEntry {
	entry := IndexEntry{Phrase: a.Phrase, Mentions: a.MentionCount()}
	entry.Speakers = make([]SpeakerTimes, 0, len(a.Speakers))
	for _, s := range a.Speakers {
		entry.Speakers = append(entry.Speakers, SpeakerTimes{
			Speaker: s.Speaker,
			Times:   append([]string(nil), s.Times...),
		})
	}
	return entry
}

// FromIndex converts a time index in insertion order.
func FromIndex(x *timeindex.Index) []IndexEntry {
	if x == nil {
		return nil
	}
	entries := x.Entries()
	out := make([]IndexEntry, 0, len(entries))
	for _, a := range entries {
		out = append(out, FromAttribution(a))
	}
	return out
}
