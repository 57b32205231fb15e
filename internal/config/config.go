// Package config loads the optional YAML configuration file. Flags override
// file values; the file overrides built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full file shape (~/.scoutahead/config.yaml by default).
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Tables   TablesConfig   `yaml:"tables"`
	Brief    BriefConfig    `yaml:"brief"`
	Provider ProviderConfig `yaml:"provider"`
}

// StorageConfig selects the bundle store backend.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // "sqlite" (default) or "redis"
	SQLitePath string `yaml:"sqlite_path"`
	RedisAddr  string `yaml:"redis_addr"`
}

// TablesConfig points at the lookup-table YAML (roles + champion classes).
type TablesConfig struct {
	Path string `yaml:"path"`
}

// BriefConfig configures the AI scouting brief.
type BriefConfig struct {
	Model string `yaml:"model"`
}

// ProviderConfig points at a series data provider API. The API key is read
// from the SCOUT_PROVIDER_KEY environment variable, never from the file.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Storage: StorageConfig{
			Backend:    "sqlite",
			SQLitePath: filepath.Join(home, ".scoutahead", "scout.db"),
			RedisAddr:  "localhost:6379",
		},
		Brief: BriefConfig{
			Model: "claude-haiku-4-5-20251001",
		},
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".scoutahead", "config.yaml")
}

// Load reads the config file, overlaying it on the defaults. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	switch cfg.Storage.Backend {
	case "", "sqlite", "redis":
	default:
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	return cfg, nil
}
