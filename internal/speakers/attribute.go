package speakers

import (
	"errors"
	"fmt"
	"strconv"

	"scribe/internal/search"
	"scribe/internal/transcript"
)

// ErrUnattributedMatch reports a match whose start time no segment owns.
var ErrUnattributedMatch = errors.New("match not attributed to any speaker")

// SpeakerTimes lists the formatted times one speaker said a phrase.
type SpeakerTimes struct {
	Speaker string   `json:"speaker"`
	Times   []string `json:"times"`
}

// Attribution groups the matches of one phrase by speaker. Speakers appear in
// the order they were first matched and times keep scan order.
type Attribution struct {
	Phrase   string         `json:"phrase"`
	Speakers []SpeakerTimes `json:"speakers"`
}

// MentionCount sums the times across all speakers.
func (a Attribution) MentionCount() int {
	n := 0
	for _, s := range a.Speakers {
		n += len(s.Times)
	}
	return n
}

// Attribute resolves the speaker of every match. Matches are grouped by
// phrase in discovery order. Speaker labels are rendered through names.
func Attribute(matches []search.Match, idx *transcript.Index, names Names) ([]Attribution, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	if idx == nil {
		return nil, fmt.Errorf("attribute matches: %w: no transcript index", ErrUnattributedMatch)
	}

	var out []Attribution
	phrasePos := make(map[string]int)
	speakerPos := make(map[string]map[string]int)

	for _, m := range matches {
		label, ok := idx.SpeakerAt(m.StartTime)
		if !ok {
			return nil, fmt.Errorf("attribute %q at %s: %w",
				m.Phrase, strconv.FormatFloat(m.StartTime, 'f', -1, 64), ErrUnattributedMatch)
		}
		speaker := names.Resolve(label)

		pi, ok := phrasePos[m.Phrase]
		if !ok {
			pi = len(out)
			phrasePos[m.Phrase] = pi
			speakerPos[m.Phrase] = make(map[string]int)
			out = append(out, Attribution{Phrase: m.Phrase})
		}
		si, ok := speakerPos[m.Phrase][speaker]
		if !ok {
			si = len(out[pi].Speakers)
			speakerPos[m.Phrase][speaker] = si
			out[pi].Speakers = append(out[pi].Speakers, SpeakerTimes{Speaker: speaker})
		}
		out[pi].Speakers[si].Times = append(out[pi].Speakers[si].Times, m.FormattedTime)
	}
	return out, nil
}
