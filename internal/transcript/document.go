package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Item types emitted by the transcription job.
const (
	ItemTypePronunciation = "pronunciation"
	ItemTypePunctuation   = "punctuation"
)

// Document represents the JSON structure returned by the transcription job.
type Document struct {
	JobName string  `json:"jobName,omitempty"`
	Status  string  `json:"status,omitempty"`
	Results Results `json:"results"`
}

// Results holds the recognized text, timed items, and speaker segments.
type Results struct {
	LanguageCode  string           `json:"language_code,omitempty"`
	Transcripts   []TranscriptText `json:"transcripts"`
	SpeakerLabels *SpeakerLabels   `json:"speaker_labels,omitempty"`
	Items         []Item           `json:"items"`
}

// TranscriptText is one full transcript rendition. Only the first is used.
type TranscriptText struct {
	Transcript string `json:"transcript"`
}

// SpeakerLabels contains speaker diarization information.
type SpeakerLabels struct {
	Speakers int          `json:"speakers,omitempty"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is a speaker segment as declared by the transcription job.
type RawSegment struct {
	SpeakerLabel string        `json:"speaker_label"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Items        []SegmentItem `json:"items"`
}

// SegmentItem references a pronunciation item owned by a segment.
type SegmentItem struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
	SpeakerLabel string `json:"speaker_label,omitempty"`
}

// Item represents an individual word or punctuation mark.
type Item struct {
	Type         string        `json:"type"`
	StartTime    string        `json:"start_time,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative represents a recognition alternative for an item.
type Alternative struct {
	Confidence string `json:"confidence,omitempty"`
	Content    string `json:"content"`
}

// Content returns the first alternative's content, or "" when none exist.
func (i Item) Content() string {
	if len(i.Alternatives) == 0 {
		return ""
	}
	return i.Alternatives[0].Content
}

// IsPunctuation reports whether the item is a punctuation mark.
func (i Item) IsPunctuation() bool {
	return strings.EqualFold(strings.TrimSpace(i.Type), ItemTypePunctuation)
}

// Text returns the full transcript text.
func (d *Document) Text() string {
	if d == nil || len(d.Results.Transcripts) == 0 {
		return ""
	}
	return d.Results.Transcripts[0].Transcript
}

// Segments returns the raw speaker segments, or nil when diarization is absent.
func (d *Document) Segments() []RawSegment {
	if d == nil || d.Results.SpeakerLabels == nil {
		return nil
	}
	return d.Results.SpeakerLabels.Segments
}

// Parse decodes a transcription document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if len(doc.Results.Transcripts) == 0 {
		return nil, fmt.Errorf("decode transcript: %w: results.transcripts is empty", ErrMalformedTranscript)
	}
	return &doc, nil
}

// Load reads and decodes a transcription document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(data)
}
