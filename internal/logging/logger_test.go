package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"scribe/internal/logging"
	"scribe/internal/testsupport"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "catalog").Info("imported transcript", logging.String(logging.FieldJob, "standup"))

	content, err := os.ReadFile(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("log file is not JSON: %v (%s)", err, content)
	}
	if entry["msg"] != "imported transcript" || entry["component"] != "catalog" || entry["job"] != "standup" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "api").Info("request served", logging.Int("status", 200), logging.String("path", "/a b"))
	line := buf.String()

	if !strings.Contains(line, " INFO api: request served") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, `status=200`) || !strings.Contains(line, `path="/a b"`) {
		t.Fatalf("expected key/value fields, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be lifted into the prefix, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "invalid", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info level filtering, got %q", buf.String())
	}
}

func TestContextFieldsReachRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithJob(context.Background(), "standup")
	ctx = logging.WithSessionID(ctx, "sess-1")
	ctx = logging.WithCorrelationID(ctx, "req-xyz")
	logger.InfoContext(ctx, "contextual log")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for key, want := range map[string]string{
		logging.FieldJob:           "standup",
		logging.FieldSessionID:     "sess-1",
		logging.FieldCorrelationID: "req-xyz",
	} {
		if entry[key] != want {
			t.Errorf("field %s = %v, want %s", key, entry[key], want)
		}
	}
}

func TestWithContextAddsFields(t *testing.T) {
	ctx := logging.WithJob(context.Background(), "retro")
	fields := logging.ContextFields(ctx)
	if len(fields) != 1 || fields[0].Key != logging.FieldJob || fields[0].Value.String() != "retro" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if logging.WithContext(context.Background(), nil) == nil {
		t.Fatal("expected fallback logger")
	}
	if len(logging.ContextFields(context.Background())) != 0 {
		t.Fatal("expected no fields for empty context")
	}
}
