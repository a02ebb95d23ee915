package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"scribe/internal/config"
	"scribe/internal/speakers"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SCRIBE_LOG_LEVEL", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "scribe")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.CatalogPath() != filepath.Join(wantData, "catalog.db") {
		t.Fatalf("unexpected catalog path: %q", cfg.CatalogPath())
	}
	if cfg.API.Bind != "127.0.0.1:7489" {
		t.Fatalf("unexpected api bind: %q", cfg.API.Bind)
	}
	if cfg.Search.MaxSuggestions != 5 || cfg.Search.SuggestionThreshold != 3 {
		t.Fatalf("unexpected search defaults: %+v", cfg.Search)
	}
	if cfg.Search.AllOccurrences {
		t.Fatal("expected all_occurrences disabled by default")
	}
	if cfg.Speakers.NameIntroductionWordBound != 30 {
		t.Fatalf("unexpected name bound: %d", cfg.Speakers.NameIntroductionWordBound)
	}
	if !reflect.DeepEqual(cfg.Speakers.Introductions, speakers.DefaultIntroductions()) {
		t.Fatalf("expected default introductions, got %+v", cfg.Speakers.Introductions)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scribe.toml")
	t.Setenv("SCRIBE_LOG_LEVEL", "")

	type payload struct {
		Search struct {
			MaxSuggestions int      `toml:"max_suggestions"`
			WatchWords     []string `toml:"watch_words"`
			AllOccurrences bool     `toml:"all_occurrences"`
		} `toml:"search"`
		Speakers struct {
			Introductions []speakers.Introduction `toml:"introductions"`
		} `toml:"speakers"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Search.MaxSuggestions = 2
	custom.Search.WatchWords = []string{" Budget ", "budget", "", "action item"}
	custom.Search.AllOccurrences = true
	custom.Speakers.Introductions = []speakers.Introduction{{Name: "known_as", Phrase: " Known As ", Explicit: true}}
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	opts := cfg.SearchOptions()
	if opts.MaxSuggestions != 2 || opts.SuggestionThreshold != 3 || !opts.AllOccurrences {
		t.Fatalf("unexpected search options: %+v", opts)
	}
	if want := []string{"Budget", "action item"}; !reflect.DeepEqual(cfg.Search.WatchWords, want) {
		t.Fatalf("unexpected watch words: %v", cfg.Search.WatchWords)
	}
	want := []speakers.Introduction{{Name: "known_as", Phrase: "known as", Explicit: true}}
	if !reflect.DeepEqual(cfg.Speakers.Introductions, want) {
		t.Fatalf("unexpected introductions: %+v", cfg.Speakers.Introductions)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestEnvVarOverridesLogLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scribe.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SCRIBE_LOG_LEVEL", "Warn")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[[speakers.introductions]]") {
		t.Fatalf("sample config missing introductions: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.DataDir, "scribe") {
		t.Fatalf("expected data dir to contain scribe, got %q", cfg.Paths.DataDir)
	}
	if len(cfg.Speakers.Introductions) != len(speakers.DefaultIntroductions()) {
		t.Fatalf("expected %d introductions, got %d", len(speakers.DefaultIntroductions()), len(cfg.Speakers.Introductions))
	}

	loaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if loaded.Search.MaxSuggestions != 5 {
		t.Fatalf("unexpected max suggestions: %d", loaded.Search.MaxSuggestions)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero max suggestions", func(c *config.Config) { c.Search.MaxSuggestions = 0 }},
		{"zero threshold", func(c *config.Config) { c.Search.SuggestionThreshold = 0 }},
		{"negative name bound", func(c *config.Config) { c.Speakers.NameIntroductionWordBound = -1 }},
		{"empty introduction phrase", func(c *config.Config) {
			c.Speakers.Introductions = []speakers.Introduction{{Name: "blank"}}
		}},
		{"duplicate introduction name", func(c *config.Config) {
			c.Speakers.Introductions = []speakers.Introduction{{Name: "a", Phrase: "x"}, {Name: "a", Phrase: "y"}}
		}},
		{"bad bind", func(c *config.Config) { c.API.Bind = "localhost" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"missing data dir", func(c *config.Config) { c.Paths.DataDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestWatchListCombinesConfigAndFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "sequence",
			yaml: "- deadline\n- Follow Up\n- budget\n",
			want: []string{"budget", "deadline", "Follow Up"},
		},
		{
			name: "mapping",
			yaml: "watch_words:\n  - follow up\n  - ''\n",
			want: []string{"budget", "follow up"},
		},
		{
			name: "empty file",
			yaml: "",
			want: []string{"budget"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("write watch list: %v", err)
			}
			cfg := config.Default()
			cfg.Search.WatchWords = []string{"budget"}
			cfg.Search.WatchListFile = path

			got, err := cfg.WatchList()
			if err != nil {
				t.Fatalf("WatchList: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("WatchList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadWatchListRejectsScalar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("just a string\n"), 0o644); err != nil {
		t.Fatalf("write watch list: %v", err)
	}
	if _, err := config.LoadWatchList(path); err == nil {
		t.Fatal("expected error for scalar watch list")
	}
}
