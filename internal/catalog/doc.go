// Package catalog persists imported transcription documents in SQLite, keyed
// by a unique job name.
//
// The catalog stands in for the remote transcription-job listing: importing a
// document under an existing name fails with ErrJobExists unless overwrite is
// requested, and removing a job reclaims its space. Writes take an advisory
// file lock next to the database so concurrent CLI invocations and a running
// API server never interleave imports.
package catalog
