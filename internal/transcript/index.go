package transcript

import (
	"fmt"
	"strconv"
	"strings"

	"scribe/internal/textutil"
)

// Token is one transcribed word or punctuation mark with timing.
type Token struct {
	Text          string
	Normalized    string
	StartTime     float64
	EndTime       float64
	IsPunctuation bool
	// Speaker is the owning segment's raw label; empty for punctuation.
	Speaker string
}

// Segment is a contiguous span of words attributed to one speaker.
type Segment struct {
	Label          string
	StartTime      float64
	EndTime        float64
	ItemStartTimes []float64
	// Text is the run of transcript words the segment consumed.
	Text string
}

// Index is the normalized, time-ordered view of a transcript.
type Index struct {
	tokens         []Token
	words          []int
	segments       []Segment
	speakers       []string
	speakerByStart map[float64]string
	languageCode   string
}

// FromDocument builds an Index from a parsed transcription document.
func FromDocument(doc *Document) (*Index, error) {
	if doc == nil {
		return nil, fmt.Errorf("build index: %w: document is nil", ErrMalformedTranscript)
	}
	idx, err := Build(doc.Text(), doc.Results.Items, doc.Segments())
	if err != nil {
		return nil, err
	}
	idx.languageCode = strings.TrimSpace(doc.Results.LanguageCode)
	return idx, nil
}

// Build splits text on whitespace and walks segments in order, consuming
// len(segment.Items) words per segment. Timings come from the pronunciation
// items, which must line up one-to-one with the segment items. Item start
// times must not decrease across the whole transcript and a segment may not
// start before the previous one ends.
func Build(text string, items []Item, segments []RawSegment) (*Index, error) {
	words := strings.Fields(text)

	declared := 0
	for _, seg := range segments {
		declared += len(seg.Items)
	}
	if declared != len(words) {
		return nil, fmt.Errorf("build index: %w: transcript has %d words but speaker segments declare %d items",
			ErrMalformedTranscript, len(words), declared)
	}

	pronunciations := make([]int, 0, len(items))
	for i, item := range items {
		if !item.IsPunctuation() {
			pronunciations = append(pronunciations, i)
		}
	}
	if len(pronunciations) != len(words) {
		return nil, fmt.Errorf("build index: %w: transcript has %d words but %d pronunciation items",
			ErrMalformedTranscript, len(words), len(pronunciations))
	}

	idx := &Index{
		segments:       make([]Segment, 0, len(segments)),
		speakerByStart: make(map[float64]string, len(words)),
	}
	owner := make([]string, len(items))
	seenSpeaker := make(map[string]struct{})
	consumed := 0
	lastStart := -1.0

	for segIdx, raw := range segments {
		seg, err := idx.consumeSegment(segIdx, raw, items, pronunciations[consumed:consumed+len(raw.Items)], owner, lastStart)
		if err != nil {
			return nil, err
		}
		if n := len(idx.segments); n > 0 && seg.StartTime < idx.segments[n-1].EndTime {
			return nil, fmt.Errorf("build index: %w: segment %d starts at %s before segment %d ends at %s",
				ErrMalformedTranscript, segIdx, formatSeconds(seg.StartTime), n-1, formatSeconds(idx.segments[n-1].EndTime))
		}
		if n := len(seg.ItemStartTimes); n > 0 {
			lastStart = seg.ItemStartTimes[n-1]
		}
		seg.Text = strings.Join(words[consumed:consumed+len(raw.Items)], " ")
		consumed += len(raw.Items)
		idx.segments = append(idx.segments, seg)
		if _, ok := seenSpeaker[seg.Label]; !ok {
			seenSpeaker[seg.Label] = struct{}{}
			idx.speakers = append(idx.speakers, seg.Label)
		}
	}

	if err := idx.buildTokens(items, owner); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx *Index) consumeSegment(segIdx int, raw RawSegment, items []Item, owned []int, owner []string, prev float64) (Segment, error) {
	label := strings.TrimSpace(raw.SpeakerLabel)
	if label == "" {
		return Segment{}, fmt.Errorf("build index: %w: segment %d has no speaker label", ErrMalformedTranscript, segIdx)
	}
	start, err := parseSeconds(raw.StartTime)
	if err != nil {
		return Segment{}, fmt.Errorf("build index: segment %d start: %w", segIdx, err)
	}
	end, err := parseSeconds(raw.EndTime)
	if err != nil {
		return Segment{}, fmt.Errorf("build index: segment %d end: %w", segIdx, err)
	}

	seg := Segment{
		Label:          label,
		StartTime:      start,
		EndTime:        end,
		ItemStartTimes: make([]float64, 0, len(raw.Items)),
	}
	for j, segItem := range raw.Items {
		at, err := parseSeconds(segItem.StartTime)
		if err != nil {
			return Segment{}, fmt.Errorf("build index: segment %d item %d: %w", segIdx, j, err)
		}
		if at < prev {
			return Segment{}, fmt.Errorf("build index: %w: segment %d item start times are not monotonic (%s after %s)",
				ErrMalformedTranscript, segIdx, formatSeconds(at), formatSeconds(prev))
		}
		prev = at

		itemIdx := owned[j]
		itemStart, err := parseSeconds(items[itemIdx].StartTime)
		if err != nil {
			return Segment{}, fmt.Errorf("build index: item %d: %w", itemIdx, err)
		}
		if itemStart != at {
			return Segment{}, fmt.Errorf("build index: %w: item %d starts at %s but segment %d declares %s",
				ErrMalformedTranscript, itemIdx, formatSeconds(itemStart), segIdx, formatSeconds(at))
		}
		if existing, ok := idx.speakerByStart[at]; ok && existing != label {
			return Segment{}, fmt.Errorf("build index: %w: start time %s claimed by %s and %s",
				ErrMalformedTranscript, formatSeconds(at), existing, label)
		}
		idx.speakerByStart[at] = label
		owner[itemIdx] = label
		seg.ItemStartTimes = append(seg.ItemStartTimes, at)
	}
	return seg, nil
}

func (idx *Index) buildTokens(items []Item, owner []string) error {
	idx.tokens = make([]Token, 0, len(items))
	idx.words = make([]int, 0, len(items))
	lastEnd := 0.0
	for i, item := range items {
		content := item.Content()
		if item.IsPunctuation() {
			idx.tokens = append(idx.tokens, Token{
				Text:          content,
				Normalized:    textutil.Normalize(content),
				StartTime:     lastEnd,
				EndTime:       lastEnd,
				IsPunctuation: true,
			})
			continue
		}
		start, err := parseSeconds(item.StartTime)
		if err != nil {
			return fmt.Errorf("build index: item %d start: %w", i, err)
		}
		end, err := parseSeconds(item.EndTime)
		if err != nil {
			return fmt.Errorf("build index: item %d end: %w", i, err)
		}
		lastEnd = end
		idx.words = append(idx.words, len(idx.tokens))
		idx.tokens = append(idx.tokens, Token{
			Text:       content,
			Normalized: textutil.Normalize(content),
			StartTime:  start,
			EndTime:    end,
			Speaker:    owner[i],
		})
	}
	return nil
}

// Len returns the number of tokens, punctuation included.
func (idx *Index) Len() int {
	return len(idx.tokens)
}

// WordCount returns the number of non-punctuation tokens.
func (idx *Index) WordCount() int {
	return len(idx.words)
}

// Word returns the i-th non-punctuation token.
func (idx *Index) Word(i int) Token {
	return idx.tokens[idx.words[i]]
}

// Tokens returns a copy of the full token sequence.
func (idx *Index) Tokens() []Token {
	out := make([]Token, len(idx.tokens))
	copy(out, idx.tokens)
	return out
}

// Segments returns a copy of the speaker segments in transcript order.
func (idx *Index) Segments() []Segment {
	out := make([]Segment, len(idx.segments))
	copy(out, idx.segments)
	return out
}

// Speakers returns raw speaker labels in order of first appearance.
func (idx *Index) Speakers() []string {
	out := make([]string, len(idx.speakers))
	copy(out, idx.speakers)
	return out
}

// SpeakerAt returns the label of the segment owning a token start time.
func (idx *Index) SpeakerAt(startTime float64) (string, bool) {
	label, ok := idx.speakerByStart[startTime]
	return label, ok
}

// LanguageCode returns the document's language code, if any.
func (idx *Index) LanguageCode() string {
	return idx.languageCode
}

func parseSeconds(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: missing time value", ErrMalformedTranscript)
	}
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: invalid time value %q", ErrMalformedTranscript, value)
	}
	return seconds, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
