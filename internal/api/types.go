package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Search statuses.
const (
	StatusFound   = "found"
	StatusNoMatch = "no_match"
)

// Transcript describes a catalog entry in a transport-friendly format.
type Transcript struct {
	ID           string `json:"id"`
	JobName      string `json:"jobName"`
	LanguageCode string `json:"languageCode,omitempty"`
	Language     string `json:"language"`
	SpeakerCount int    `json:"speakerCount"`
	WordCount    int    `json:"wordCount"`
	SourcePath   string `json:"sourcePath,omitempty"`
	ImportedAt   string `json:"importedAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// Speaker pairs a raw speaker label with its display name.
type Speaker struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// Segment is one speaker turn of the transcript.
type Segment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Span      string  `json:"span"`
	Text      string  `json:"text"`
}

// TranscriptDetail adds speakers and segments to a Transcript.
type TranscriptDetail struct {
	Transcript
	Speakers []Speaker `json:"speakers"`
	Segments []Segment `json:"segments"`
}

// Match is one confirmed occurrence of a query.
type Match struct {
	Phrase    string  `json:"phrase"`
	Time      string  `json:"time"`
	StartTime float64 `json:"startTime"`
	Position  int     `json:"position"`
	Speaker   string  `json:"speaker"`
}

// Suggestion is a ranked alternative offered when a query has no match.
// Rank is one-based and is the number a user picks to retry.
type Suggestion struct {
	Rank     int    `json:"rank"`
	Text     string `json:"text"`
	Distance int    `json:"distance"`
}

// SpeakerTimes lists the times one speaker said a phrase.
type SpeakerTimes struct {
	Speaker string   `json:"speaker"`
	Times   []string `json:"times"`
}

// IndexEntry is one phrase of a time index.
type IndexEntry struct {
	Phrase   string         `json:"phrase"`
	Mentions int            `json:"mentions"`
	Speakers []SpeakerTimes `json:"speakers"`
}

// SearchResult is the outcome of one search round.
type SearchResult struct {
	Query       string       `json:"query"`
	Status      string       `json:"status"`
	Matches     []Match      `json:"matches,omitempty"`
	Mentions    *IndexEntry  `json:"mentions,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Found reports whether the round produced matches.
func (r SearchResult) Found() bool {
	return r.Status == StatusFound
}

// IndexResult is the combined time index of a run.
type IndexResult struct {
	Job     string       `json:"job,omitempty"`
	Title   string       `json:"title"`
	Entries []IndexEntry `json:"entries"`
	// Missing lists ad hoc queries that matched nothing. Watch words
	// without a match are omitted silently.
	Missing []string `json:"missing,omitempty"`
}
