// Package main hosts the scribe CLI entrypoint and command graph.
//
// The Cobra command tree imports transcription documents into the local
// catalog, searches them for words and phrases, builds per-speaker search
// indexes and serves the same operations over HTTP. Configuration is resolved
// once per invocation and shared by every subcommand through commandContext.
//
// Keep this package lean: behaviour lives in the internal packages and is
// surfaced here as flags and rendering.
package main
