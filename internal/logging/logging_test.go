package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cli.log")
	cfg := DefaultConfig()
	cfg.OutputPaths = []string{out}

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("dropped")
	log.Info("archived")
	log.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["level"] != "info" || entry["message"] != "archived" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestNewDefaults(t *testing.T) {
	if NewDefault() == nil || NewDevelopment() == nil {
		t.Error("constructors should never return nil")
	}
}
