package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/testsupport"
)

type cliTestEnv struct {
	configPath     string
	reportDir      string
	transcriptPath string
	baseDir        string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SCRIBE_LOG_LEVEL", "")

	configPath := filepath.Join(homeDir, ".config", "scribe", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	reportDir := filepath.Join(base, "reports")
	writeTestConfig(t, configPath, base, reportDir)

	doc := testsupport.Document(testsupport.Join(
		testsupport.Words("spk_0", 0, "hi", "my", "name", "is", "ana", "the", "budget", "is", "due"),
		testsupport.Words("spk_1", 9, "hello", "the", "budget", "again"),
	)...)
	transcriptPath := testsupport.WriteDocument(t, base, doc)

	return &cliTestEnv{
		configPath:     configPath,
		reportDir:      reportDir,
		transcriptPath: transcriptPath,
		baseDir:        base,
	}
}

func writeTestConfig(t *testing.T, path, base, reportDir string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
log_dir = %q
data_dir = %q
report_dir = %q

[search]
watch_words = ["again", "nowhere"]

[logging]
level = "error"
`, filepath.Join(base, "logs"), filepath.Join(base, "data"), reportDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustImport(t *testing.T, env *cliTestEnv, job string) {
	t.Helper()
	if _, _, err := runCLI(t, env, "", "import", env.transcriptPath, "--job", job); err != nil {
		t.Fatalf("import: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
