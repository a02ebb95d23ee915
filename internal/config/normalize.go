package config

import (
	"fmt"
	"os"
	"strings"

	"scribe/internal/speakers"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSearch(); err != nil {
		return err
	}
	c.normalizeSpeakers()
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	if c.API.Bind == "" {
		c.API.Bind = defaultAPIBind
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSearch() error {
	c.Search.WatchWords = dedupeWords(c.Search.WatchWords)
	c.Search.WatchListFile = strings.TrimSpace(c.Search.WatchListFile)
	if c.Search.WatchListFile != "" {
		var err error
		if c.Search.WatchListFile, err = expandPath(c.Search.WatchListFile); err != nil {
			return fmt.Errorf("search.watch_list_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeSpeakers() {
	if c.Speakers.NameIntroductionWordBound == 0 {
		c.Speakers.NameIntroductionWordBound = defaultNameIntroductionWordBound
	}
	if len(c.Speakers.Introductions) == 0 {
		c.Speakers.Introductions = speakers.DefaultIntroductions()
	}
	for i := range c.Speakers.Introductions {
		intro := &c.Speakers.Introductions[i]
		intro.Name = strings.TrimSpace(intro.Name)
		intro.Phrase = strings.ToLower(strings.TrimSpace(intro.Phrase))
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("SCRIBE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func dedupeWords(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		trimmed := strings.TrimSpace(word)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
