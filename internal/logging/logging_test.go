package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/patrickprogramme/lyricruby/internal/config"
)

func TestNewJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("bonjour", slog.Int("line", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if _, ok := entry["ts"]; !ok {
		t.Errorf("missing ts key: %v", entry)
	}
	if entry["level"] != "debug" || entry["msg"] != "bonjour" || entry["line"] != float64(3) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("masqué")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "masqué") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Fatalf("console output should not carry time: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewFromConfigAndRunID(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	logger, err := NewFromConfig(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger, id := WithRunID(logger)
	logger.Info("run")

	if len(id) != 36 || !strings.Contains(buf.String(), `"run_id":"`+id+`"`) {
		t.Fatalf("run id %q not found in %q", id, buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}
