package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "notalib.yml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Progress.Interval() != 100*time.Millisecond {
		t.Fatalf("default interval: got %v", cfg.Progress.Interval())
	}
	if len(cfg.Date.InputLayouts) == 0 || cfg.Date.OutputLayout == "" {
		t.Fatalf("default date layouts missing: %+v", cfg.Date)
	}
}

func TestLoadParsesAndOverrides(t *testing.T) {
	p := writeConfig(t, strings.TrimSpace(`
progress:
  interval_ms: 500
  no_captions: true
date:
  input_layouts: ["02.01.2006"]
  output_layout: "2006-01-02"
log:
  level: debug
  format: json
`))
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Progress.Interval() != 500*time.Millisecond || !cfg.Progress.NoCaptions {
		t.Fatalf("progress: %+v", cfg.Progress)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log: %+v", cfg.Log)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	p := writeConfig(t, "progress:\n  intervall_ms: 5\n")
	if _, err := Load(p); err == nil {
		t.Fatal("want strict-mode error for unknown key")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"progress:\n  interval_ms: -1\n",
		"log:\n  level: loud\n",
	}
	for _, content := range cases {
		p := writeConfig(t, content)
		if _, err := Load(p); err == nil {
			t.Fatalf("want validation error for %q", content)
		}
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("want error")
	}
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
}
