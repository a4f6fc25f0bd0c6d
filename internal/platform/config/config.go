package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultCity     = "Miami"
	defaultTimezone = "America/New_York"
	defaultModel    = "gemini-2.0-flash"
	defaultHistory  = 6
)

// Config carries the resolved runtime settings. The data dir holds every
// persisted artifact: session slots, overrides, chat history, logs.
type Config struct {
	DataDir      string
	DBPath       string
	LogPath      string
	City         string `yaml:"city"`
	Timezone     string `yaml:"timezone"`
	Model        string `yaml:"model"`
	HistoryTurns int    `yaml:"history_turns"`
}

// New resolves the config for a data dir, overlaying an optional config.yaml
// found inside it. Missing file or missing fields fall back to defaults.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "rovi.db"),
		LogPath:      filepath.Join(dataDir, "rovi.log"),
		City:         defaultCity,
		Timezone:     defaultTimezone,
		Model:        defaultModel,
		HistoryTurns: defaultHistory,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.City == "" {
		cfg.City = defaultCity
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.HistoryTurns <= 0 {
		cfg.HistoryTurns = defaultHistory
	}
	return cfg, nil
}
