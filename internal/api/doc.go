// Package api defines wire-format types, converters and the HTTP server for
// transcript search. It translates catalog entries, search results and time
// indexes into transport-friendly DTOs so the CLI and HTTP consumers render
// the same payloads without coupling to internal types.
//
// # Key Types
//
// Transcript/TranscriptDetail: catalog entry with detected language display
// name, plus the speaker-attributed segments.
//
// SearchResult: one search round. Status is "found" with matches grouped by
// speaker, or "no_match" with ranked suggestions.
//
// IndexResult: the combined phrase → speaker → times record of ad hoc queries
// and the watch-list.
//
// # Workflows
//
// Analyzer runs searches against a single transcript index using the
// configured engine options and name-introduction rules. TranscriptService
// does the same for catalog jobs. Server exposes TranscriptService over HTTP.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Timestamps use RFC3339 with milliseconds.
// Times inside matches are HH:MM:SS strings, matching the CLI output.
package api
