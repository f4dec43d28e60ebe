package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/expense/internal/model"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "expense.yaml"

// Config represents the top-level expense.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// LedgerConfig locates the working ledger file.
type LedgerConfig struct {
	Path       string   `yaml:"path"       env:"LEDGER_PATH"`
	Categories []string `yaml:"categories"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Theme string `yaml:"theme" env:"THEME"` // "light" or "dark"
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"` // "console" or "json"
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads path if it exists, falls back to defaults otherwise, and
// applies EXPENSE_* environment overrides. A relative ledger.path read from
// the file is taken relative to the file's directory; one from the
// environment is left as given.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	case err != nil:
		return nil, err
	case cfg.Ledger.Path != "" && !filepath.IsAbs(cfg.Ledger.Path):
		cfg.Ledger.Path = filepath.Join(filepath.Dir(path), cfg.Ledger.Path)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "EXPENSE_"}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path:       "expenses.csv",
			Categories: model.Categories(),
		},
		Display: DisplayConfig{
			Theme: "light",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
