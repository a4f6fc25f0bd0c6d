package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"rovi/internal/platform/config"
)

func TestNewAppliesDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.City != "Miami" || cfg.Timezone != "America/New_York" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HistoryTurns != 6 {
		t.Fatalf("expected default history turns, got %d", cfg.HistoryTurns)
	}
}

func TestNewOverlaysYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := "city: Lisbon\nmodel: gemini-1.5-flash\nhistory_turns: 12\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.City != "Lisbon" || cfg.Model != "gemini-1.5-flash" || cfg.HistoryTurns != 12 {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("unset field must keep default, got %s", cfg.Timezone)
	}
}

func TestNewRejectsEmptyDirAndBadYAML(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data dir must fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("city: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("invalid yaml must fail")
	}
}
