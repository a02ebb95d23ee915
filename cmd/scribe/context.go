package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/catalog"
	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/transcript"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) withCatalog(fn func(*config.Config, *catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

// transcriptSource is a loaded transcript plus the name used in headings.
type transcriptSource struct {
	job      string
	language string
	index    *transcript.Index
}

// loadTranscript resolves either a catalog job or a transcript file.
func (c *commandContext) loadTranscript(ctx context.Context, job, file string) (*transcriptSource, error) {
	if file != "" {
		doc, err := transcript.Load(file)
		if err != nil {
			return nil, err
		}
		idx, err := transcript.FromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		name := strings.TrimSpace(doc.JobName)
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}
		return &transcriptSource{job: name, language: idx.LanguageCode(), index: idx}, nil
	}

	var src *transcriptSource
	err := c.withCatalog(func(_ *config.Config, store *catalog.Store) error {
		entry, err := store.Get(ctx, job)
		if err != nil {
			return err
		}
		idx, err := store.Index(ctx, entry.JobName)
		if err != nil {
			return err
		}
		src = &transcriptSource{job: entry.JobName, language: entry.LanguageCode, index: idx}
		return nil
	})
	return src, err
}

func (c *commandContext) analyzer() (*api.Analyzer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return api.NewAnalyzer(cfg), nil
}

// splitSourceArgs separates the job name from the remaining arguments unless
// a transcript file was given.
func splitSourceArgs(args []string, file string) (string, []string, error) {
	if file != "" {
		return "", args, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("a job name or --file is required")
	}
	return args[0], args[1:], nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
