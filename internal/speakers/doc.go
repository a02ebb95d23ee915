// Package speakers maps confirmed search matches back to the speakers who said
// them and guesses speaker names from self-introductions.
//
// Attribution relies on the Index's start-time lookup. A match whose start time
// is unknown to the index means the index was built wrong, so Attribute fails
// with ErrUnattributedMatch rather than dropping it.
package speakers
