package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"scribe/internal/transcript"
)

// Word describes one fixture item. Punctuation words carry no timing and
// attach to the preceding word in the transcript text.
type Word struct {
	Text    string
	Start   float64
	End     float64
	Speaker string
	Punct   bool
}

// Punct returns a punctuation fixture item.
func Punct(mark string) Word {
	return Word{Text: mark, Punct: true}
}

// Words returns pronunciation items for a single speaker starting at the
// given second, one word per second.
func Words(speaker string, start float64, texts ...string) []Word {
	out := make([]Word, 0, len(texts))
	for i, text := range texts {
		at := start + float64(i)
		out = append(out, Word{Text: text, Start: at, End: at + 0.5, Speaker: speaker})
	}
	return out
}

// Document assembles a transcription document shaped like the job output:
// transcript text with punctuation attached, timed items, and one speaker
// segment per run of consecutive same-speaker words.
func Document(words ...Word) *transcript.Document {
	var text []string
	items := make([]transcript.Item, 0, len(words))
	var segments []transcript.RawSegment

	for _, w := range words {
		if w.Punct {
			items = append(items, transcript.Item{
				Type:         transcript.ItemTypePunctuation,
				Alternatives: []transcript.Alternative{{Content: w.Text}},
			})
			if n := len(text); n > 0 {
				text[n-1] += w.Text
			}
			continue
		}
		start, end := seconds(w.Start), seconds(w.End)
		items = append(items, transcript.Item{
			Type:         transcript.ItemTypePronunciation,
			StartTime:    start,
			EndTime:      end,
			Alternatives: []transcript.Alternative{{Confidence: "0.99", Content: w.Text}},
		})
		text = append(text, w.Text)

		segItem := transcript.SegmentItem{StartTime: start, EndTime: end, SpeakerLabel: w.Speaker}
		if n := len(segments); n > 0 && segments[n-1].SpeakerLabel == w.Speaker {
			segments[n-1].Items = append(segments[n-1].Items, segItem)
			segments[n-1].EndTime = end
			continue
		}
		segments = append(segments, transcript.RawSegment{
			SpeakerLabel: w.Speaker,
			StartTime:    start,
			EndTime:      end,
			Items:        []transcript.SegmentItem{segItem},
		})
	}

	speakers := map[string]struct{}{}
	for _, seg := range segments {
		speakers[seg.SpeakerLabel] = struct{}{}
	}
	return &transcript.Document{
		JobName: "fixture",
		Status:  "COMPLETED",
		Results: transcript.Results{
			LanguageCode:  "en-US",
			Transcripts:   []transcript.TranscriptText{{Transcript: strings.Join(text, " ")}},
			SpeakerLabels: &transcript.SpeakerLabels{Speakers: len(speakers), Segments: segments},
			Items:         items,
		},
	}
}

// Join concatenates fixture word groups.
func Join(groups ...[]Word) []Word {
	var out []Word
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// MustIndex builds an index from fixture words and fails the test on error.
func MustIndex(t testing.TB, words ...Word) *transcript.Index {
	t.Helper()
	idx, err := transcript.FromDocument(Document(words...))
	if err != nil {
		t.Fatalf("transcript.FromDocument: %v", err)
	}
	return idx
}

// WriteDocument writes the document as JSON under dir and returns its path.
func WriteDocument(t testing.TB, dir string, doc *transcript.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}
	path := filepath.Join(dir, "transcript.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
