package testsupport

import (
	"path/filepath"
	"testing"

	"scribe/internal/config"
	"scribe/internal/speakers"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ReportDir = filepath.Join(base, "reports")
	cfgVal.Speakers.Introductions = speakers.DefaultIntroductions()
	cfgVal.API.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWatchWords sets the configured watch-list.
func WithWatchWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Search.WatchWords = words
	}
}

// WithSearch overrides the suggestion limit and distance threshold.
func WithSearch(maxSuggestions, threshold int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Search.MaxSuggestions = maxSuggestions
		b.cfg.Search.SuggestionThreshold = threshold
	}
}

// WithAllOccurrences makes single-word searches collect every occurrence.
func WithAllOccurrences() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Search.AllOccurrences = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
