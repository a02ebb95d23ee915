package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"scribe/internal/fileutil"
	"scribe/internal/search"
	"scribe/internal/speakers"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir    string `toml:"log_dir"`
	DataDir   string `toml:"data_dir"`
	ReportDir string `toml:"report_dir"`
}

// Search contains the settings passed to every search engine call.
type Search struct {
	MaxSuggestions      int      `toml:"max_suggestions"`
	SuggestionThreshold int      `toml:"suggestion_threshold"`
	WatchWords          []string `toml:"watch_words"`
	WatchListFile       string   `toml:"watch_list_file"`
	AllOccurrences      bool     `toml:"all_occurrences"`
}

// Speakers contains the speaker-name identification rules. Introductions are
// evaluated in the order they are listed.
type Speakers struct {
	NameIntroductionWordBound int                     `toml:"name_introduction_word_bound"`
	Introductions             []speakers.Introduction `toml:"introductions"`
}

// API contains the HTTP server settings.
type API struct {
	Bind string `toml:"bind"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for scribe.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Search   Search   `toml:"search"`
	Speakers Speakers `toml:"speakers"`
	API      API      `toml:"api"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scribe/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("scribe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log and data directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CatalogPath returns the transcript catalog database path.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.Paths.DataDir, "catalog.db")
}

// CatalogLockPath returns the lock file guarding catalog writes.
func (c *Config) CatalogLockPath() string {
	return filepath.Join(c.Paths.DataDir, "catalog.lock")
}

// LogFilePath returns the file the CLI appends logs to.
func (c *Config) LogFilePath() string {
	return filepath.Join(c.Paths.LogDir, "scribe.log")
}

// SearchOptions returns the explicit engine settings.
func (c *Config) SearchOptions() search.Options {
	return search.Options{
		MaxSuggestions:      c.Search.MaxSuggestions,
		SuggestionThreshold: c.Search.SuggestionThreshold,
		AllOccurrences:      c.Search.AllOccurrences,
	}
}

// WatchList returns the configured watch words followed by the entries of the
// watch-list file, without duplicates.
func (c *Config) WatchList() ([]string, error) {
	words := append([]string(nil), c.Search.WatchWords...)
	if c.Search.WatchListFile != "" {
		extra, err := LoadWatchList(c.Search.WatchListFile)
		if err != nil {
			return nil, err
		}
		words = append(words, extra...)
	}
	return dedupeWords(words), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
