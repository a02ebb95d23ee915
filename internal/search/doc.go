// Package search locates words and phrases inside a transcript.Index and
// proposes near-miss suggestions when no exact occurrence exists.
//
// Single-word queries scan the non-punctuation tokens and stop at the first
// equal token unless Options.AllOccurrences is set. Phrase queries scan the
// whole transcript once and collect every non-overlapping occurrence. While
// scanning, tokens (or runs of tokens) whose words have exactly the query
// words' lengths are scored with textutil.Distance and kept as candidates when
// the total stays within Options.SuggestionThreshold. Near-misses with an
// inserted or deleted letter are therefore never suggested; this is a known
// limitation of the same-length rule.
//
// Session wraps the engine in the interactive retry loop: a caller submits
// queries, receives a tagged Outcome (found, suggestions, cancelled) and drives
// the next round. The engine itself performs no I/O and keeps no state between
// calls.
package search
