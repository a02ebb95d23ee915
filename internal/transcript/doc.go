// Package transcript parses speaker-labelled transcription documents and builds
// the read-only Index that phrase search runs against.
//
// A Document mirrors the JSON produced by the transcription job: the full
// transcript text, the ordered item list (pronunciations and punctuation with
// their timings), and the speaker-label segments. Build walks the segments in
// order, consuming as many transcript words as each segment declares items, and
// fails with ErrMalformedTranscript when the counts or timings disagree.
//
// An Index is immutable once built. It is safe to share by reference across any
// number of sequential searches.
package transcript
