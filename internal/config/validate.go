package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateSpeakers(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.MaxSuggestions < 1 {
		return errors.New("search.max_suggestions must be >= 1")
	}
	if c.Search.SuggestionThreshold < 1 {
		return errors.New("search.suggestion_threshold must be >= 1")
	}
	return nil
}

func (c *Config) validateSpeakers() error {
	if c.Speakers.NameIntroductionWordBound < 0 {
		return errors.New("speakers.name_introduction_word_bound must be >= 0")
	}
	seen := make(map[string]struct{}, len(c.Speakers.Introductions))
	for i, intro := range c.Speakers.Introductions {
		if intro.Phrase == "" {
			return fmt.Errorf("speakers.introductions[%d].phrase must be set", i)
		}
		if intro.Name == "" {
			continue
		}
		if _, dup := seen[intro.Name]; dup {
			return fmt.Errorf("speakers.introductions[%d].name %q is duplicated", i, intro.Name)
		}
		seen[intro.Name] = struct{}{}
	}
	return nil
}

func (c *Config) validateAPI() error {
	if _, _, err := net.SplitHostPort(c.API.Bind); err != nil {
		return fmt.Errorf("api.bind %q must be host:port: %w", c.API.Bind, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
