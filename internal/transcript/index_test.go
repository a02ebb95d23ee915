package transcript_test

import (
	"errors"
	"strings"
	"testing"

	"scribe/internal/testsupport"
	"scribe/internal/transcript"
)

func TestFromDocumentBuildsTokensAndSpeakers(t *testing.T) {
	words := testsupport.Join(
		testsupport.Words("spk_0", 0, "Hello", "world"),
		[]testsupport.Word{testsupport.Punct(".")},
		testsupport.Words("spk_1", 2, "My", "name", "is", "James"),
		[]testsupport.Word{testsupport.Punct(".")},
	)
	idx := testsupport.MustIndex(t, words...)

	if idx.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", idx.Len())
	}
	if idx.WordCount() != 6 {
		t.Fatalf("WordCount() = %d, want 6", idx.WordCount())
	}
	if got := idx.Word(1); got.Normalized != "world" || got.StartTime != 1 || got.Speaker != "spk_0" {
		t.Fatalf("unexpected word 1: %#v", got)
	}
	if got := idx.Word(5); got.Text != "James" || got.Normalized != "james" || got.Speaker != "spk_1" {
		t.Fatalf("unexpected word 5: %#v", got)
	}

	tokens := idx.Tokens()
	if !tokens[2].IsPunctuation || tokens[2].Speaker != "" {
		t.Fatalf("expected token 2 to be punctuation, got %#v", tokens[2])
	}

	segments := idx.Segments()
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Text != "Hello world." {
		t.Fatalf("segment 0 text = %q", segments[0].Text)
	}
	if segments[1].Text != "My name is James." {
		t.Fatalf("segment 1 text = %q", segments[1].Text)
	}
	if len(segments[1].ItemStartTimes) != 4 || segments[1].ItemStartTimes[0] != 2 {
		t.Fatalf("unexpected item start times: %v", segments[1].ItemStartTimes)
	}

	if label, ok := idx.SpeakerAt(3); !ok || label != "spk_1" {
		t.Fatalf("SpeakerAt(3) = %q, %v", label, ok)
	}
	if _, ok := idx.SpeakerAt(3.5); ok {
		t.Fatal("expected no speaker for unknown start time")
	}
	if speakers := idx.Speakers(); len(speakers) != 2 || speakers[0] != "spk_0" {
		t.Fatalf("unexpected speakers: %v", speakers)
	}
	if idx.LanguageCode() != "en-US" {
		t.Fatalf("LanguageCode() = %q", idx.LanguageCode())
	}
}

func TestBuildRejectsWordCountMismatch(t *testing.T) {
	doc := testsupport.Document(testsupport.Words("spk_0", 0, "one", "two", "three")...)
	doc.Results.Transcripts[0].Transcript = "one two"

	_, err := transcript.FromDocument(doc)
	if !errors.Is(err, transcript.ErrMalformedTranscript) {
		t.Fatalf("expected ErrMalformedTranscript, got %v", err)
	}
}

func TestBuildRejectsNonMonotonicSegmentItems(t *testing.T) {
	doc := testsupport.Document(testsupport.Words("spk_0", 0, "one", "two", "three")...)
	seg := &doc.Results.SpeakerLabels.Segments[0]
	seg.Items[1], seg.Items[2] = seg.Items[2], seg.Items[1]

	_, err := transcript.FromDocument(doc)
	if !errors.Is(err, transcript.ErrMalformedTranscript) {
		t.Fatalf("expected ErrMalformedTranscript, got %v", err)
	}
}

func TestBuildRejectsSegmentsOutOfTimeOrder(t *testing.T) {
	twoSpeakers := func() *transcript.Document {
		return testsupport.Document(testsupport.Join(
			testsupport.Words("spk_0", 0, "one", "two"),
			testsupport.Words("spk_1", 2, "three"),
		)...)
	}
	setItemStart := func(doc *transcript.Document, item int, at string) {
		doc.Results.Items[item].StartTime = at
		doc.Results.SpeakerLabels.Segments[1].Items[0].StartTime = at
	}

	tests := []struct {
		name    string
		doc     func() *transcript.Document
		wantMsg string
	}{
		{
			name: "later segment listed first",
			doc: func() *transcript.Document {
				return testsupport.Document(testsupport.Join(
					testsupport.Words("spk_0", 10, "alpha", "beta"),
					testsupport.Words("spk_1", 0, "gamma"),
				)...)
			},
			wantMsg: "not monotonic",
		},
		{
			name: "item earlier than previous segment",
			doc: func() *transcript.Document {
				doc := twoSpeakers()
				setItemStart(doc, 2, "0.500")
				return doc
			},
			wantMsg: "not monotonic",
		},
		{
			name: "overlapping segments",
			doc: func() *transcript.Document {
				doc := twoSpeakers()
				doc.Results.SpeakerLabels.Segments[0].EndTime = "9.000"
				doc.Results.SpeakerLabels.Segments[1].StartTime = "1.500"
				return doc
			},
			wantMsg: "before segment 0 ends",
		},
		{
			name: "start time claimed by two speakers",
			doc: func() *transcript.Document {
				doc := twoSpeakers()
				doc.Results.SpeakerLabels.Segments[0].EndTime = "1.000"
				doc.Results.SpeakerLabels.Segments[1].StartTime = "1.000"
				setItemStart(doc, 2, "1.000")
				return doc
			},
			wantMsg: "claimed by spk_0 and spk_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transcript.FromDocument(tt.doc())
			if !errors.Is(err, transcript.ErrMalformedTranscript) {
				t.Fatalf("expected ErrMalformedTranscript, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestBuildAcceptsTouchingSegments(t *testing.T) {
	doc := testsupport.Document(testsupport.Join(
		testsupport.Words("spk_0", 0, "one", "two"),
		testsupport.Words("spk_1", 2, "three"),
	)...)
	doc.Results.SpeakerLabels.Segments[0].EndTime = "2.000"

	idx, err := transcript.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument returned error: %v", err)
	}
	if got := len(idx.Segments()); got != 2 {
		t.Fatalf("expected 2 segments, got %d", got)
	}
}

func TestBuildRejectsSegmentItemTimingDisagreement(t *testing.T) {
	doc := testsupport.Document(testsupport.Words("spk_0", 0, "one", "two")...)
	doc.Results.Items[1].StartTime = "7.000"

	_, err := transcript.FromDocument(doc)
	if !errors.Is(err, transcript.ErrMalformedTranscript) {
		t.Fatalf("expected ErrMalformedTranscript, got %v", err)
	}
}

func TestBuildRejectsMissingSpeakerLabels(t *testing.T) {
	doc := testsupport.Document(testsupport.Words("spk_0", 0, "one")...)
	doc.Results.SpeakerLabels = nil

	_, err := transcript.FromDocument(doc)
	if !errors.Is(err, transcript.ErrMalformedTranscript) {
		t.Fatalf("expected ErrMalformedTranscript, got %v", err)
	}
}

func TestBuildEmptyTranscript(t *testing.T) {
	idx, err := transcript.Build("", nil, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if idx.Len() != 0 || idx.WordCount() != 0 {
		t.Fatalf("expected empty index, got %d tokens", idx.Len())
	}
}

func TestParseRequiresTranscripts(t *testing.T) {
	if _, err := transcript.Parse([]byte(`{"results":{"transcripts":[]}}`)); !errors.Is(err, transcript.ErrMalformedTranscript) {
		t.Fatalf("expected ErrMalformedTranscript, got %v", err)
	}
	if _, err := transcript.Parse([]byte(`{`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadRoundTripsFixture(t *testing.T) {
	doc := testsupport.Document(testsupport.Words("spk_2", 10, "good", "morning")...)
	path := testsupport.WriteDocument(t, t.TempDir(), doc)

	loaded, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Text() != "good morning" {
		t.Fatalf("Text() = %q", loaded.Text())
	}
	if segs := loaded.Segments(); len(segs) != 1 || segs[0].SpeakerLabel != "spk_2" {
		t.Fatalf("unexpected segments: %#v", segs)
	}
}
