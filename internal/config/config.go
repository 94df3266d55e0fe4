// Package config handles reading and writing the pacer config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pacelab/pacer/internal/content"
	"github.com/pacelab/pacer/internal/microbreak"
)

const (
	configDirName = "pacer"
	configFile    = "config.yaml"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version  int               `yaml:"version"`
	Database DatabaseConfig    `yaml:"database"`
	Session  SessionConfig     `yaml:"session"`
	Breaks   microbreak.Config `yaml:"breaks"`
	Content  content.Config    `yaml:"content"`
}

// DatabaseConfig locates the event store.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means the default data directory.
	Path string `yaml:"path"`
}

// SessionConfig controls how practice sessions are generated.
type SessionConfig struct {
	QuestionsPerSkill int `yaml:"questions_per_skill"`
	TotalQuestions    int `yaml:"total_questions"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		Session: SessionConfig{
			QuestionsPerSkill: 5,
			TotalQuestions:    15,
		},
		Breaks:  microbreak.DefaultConfig(),
		Content: content.DefaultConfig(),
	}
}

// DefaultPath resolves the config file path:
// 1. PACER_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/pacer/config.yaml
// 3. ~/.config/pacer/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("PACER_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, configDirName, configFile), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables overlay file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file, defaults plus env.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Write writes cfg to the given path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv("PACER_DB"); p != "" {
		c.Database.Path = p
	}
	c.Content.ApplyEnv()
}
