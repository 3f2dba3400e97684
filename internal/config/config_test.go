package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const validYAML = `
database:
  path: "/tmp/elsewhere/gym.db"
defaults:
  sets: 5
  types:
    - "Push"
    - "Pull"
    - "Legs"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// TestLoadDefaults verifies that a directory without a config file
// yields the built-in defaults, anchored to that directory.
func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "gymlog.db"); cfg.Database.Path != want {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, want)
	}
	if cfg.Defaults.Sets != 3 {
		t.Errorf("defaults.sets = %d, want 3", cfg.Defaults.Sets)
	}
	if !reflect.DeepEqual(cfg.Defaults.Types, DefaultTypes) {
		t.Errorf("defaults.types = %v, want built-in picklist", cfg.Defaults.Types)
	}
}

// TestLoadFromFile verifies that a well-formed config.yaml overrides
// every default.
func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/elsewhere/gym.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/tmp/elsewhere/gym.db")
	}
	if cfg.Defaults.Sets != 5 {
		t.Errorf("defaults.sets = %d, want 5", cfg.Defaults.Sets)
	}
	if want := []string{"Push", "Pull", "Legs"}; !reflect.DeepEqual(cfg.Defaults.Types, want) {
		t.Errorf("defaults.types = %v, want %v", cfg.Defaults.Types, want)
	}
}

// TestEnvOverride verifies that GYMLOG_ env vars beat YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("GYMLOG_DATABASE_PATH", "/tmp/env/gym.db")
	t.Setenv("GYMLOG_DEFAULTS_SETS", "4")

	cfg, err := LoadFrom(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/env/gym.db" {
		t.Errorf("database.path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Defaults.Sets != 4 {
		t.Errorf("defaults.sets = %d, want 4", cfg.Defaults.Sets)
	}
}

// TestLoadMalformed surfaces a parse error instead of silently using
// defaults.
func TestLoadMalformed(t *testing.T) {
	if _, err := LoadFrom(writeConfig(t, "defaults: [not: a: map")); err == nil {
		t.Error("expected an error for malformed yaml, got nil")
	}
}
