// Package timeindex aggregates search results into a phrase → speaker → times
// record with per-phrase mention counts.
//
// Both levels keep insertion order: phrases appear in the order they were
// first recorded and speakers in the order they were first matched. Recording
// a phrase again replaces its entry without moving it.
package timeindex
