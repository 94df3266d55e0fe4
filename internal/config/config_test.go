package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.Session.TotalQuestions != 15 {
		t.Errorf("total questions = %d, want 15", cfg.Session.TotalQuestions)
	}
	if cfg.Breaks.MinSessionDuration != 10*time.Minute {
		t.Errorf("min session duration = %v, want 10m", cfg.Breaks.MinSessionDuration)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Session.TotalQuestions = 30
	cfg.Breaks.BreakDuration = 90 * time.Second
	cfg.Content.Provider = "mock"
	cfg.Database.Path = "/tmp/pacer-test.db"

	if err := Write(path, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Session.TotalQuestions != 30 {
		t.Errorf("total questions = %d, want 30", got.Session.TotalQuestions)
	}
	if got.Breaks.BreakDuration != 90*time.Second {
		t.Errorf("break duration = %v, want 90s", got.Breaks.BreakDuration)
	}
	if got.Database.Path != "/tmp/pacer-test.db" {
		t.Errorf("db path = %q", got.Database.Path)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session: [not a map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Database.Path = "/from/file.db"
	if err := Write(path, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("PACER_DB", "/from/env.db")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Database.Path != "/from/env.db" {
		t.Errorf("db path = %q, want env override", got.Database.Path)
	}
}

func TestDefaultPathPrefersEnv(t *testing.T) {
	t.Setenv("PACER_CONFIG", "/custom/pacer.yaml")

	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != "/custom/pacer.yaml" {
		t.Errorf("path = %q, want PACER_CONFIG value", p)
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	t.Setenv("PACER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join("/xdg/config", "pacer", "config.yaml")
	if p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
