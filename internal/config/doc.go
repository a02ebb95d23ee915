// Package config loads, normalizes, and validates scribe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SCRIBE_LOG_LEVEL environment
// fallback. Watch-lists may additionally be kept in a YAML file referenced
// from the search section.
//
// Search settings reach the engine through Config.SearchOptions so core
// packages never read configuration themselves.
package config
