// Package logging assembles structured slog loggers and formatting helpers used
// across scribe.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so catalog, API and CLI code can
// tag log lines with job names, session IDs, and correlation IDs. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// The search core never logs. Loggers stop at the packages that perform I/O.
package logging
