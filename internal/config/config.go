// Package config layers duebook settings: defaults, then an optional
// duebook.yaml, then environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level duebook configuration.
type Config struct {
	// LedgerFile overrides where expenses.json lives. Empty means next to
	// the executable.
	LedgerFile string `yaml:"ledger_file" env:"DUEBOOK_FILE"`
	// Currency is the symbol used when rendering amounts.
	Currency string `yaml:"currency" env:"DUEBOOK_CURRENCY"`
	Log      Log    `yaml:"log"`
}

// Log controls the logger.
type Log struct {
	Level  string `yaml:"level" env:"DUEBOOK_LOG_LEVEL"`
	Format string `yaml:"format" env:"DUEBOOK_LOG_FORMAT"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Currency: "$",
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with the yaml
// file at path when it exists, overlaid with environment variables. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file, fine.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars win over both defaults and file. No envDefault tags: unset
	// variables leave the layered values alone.
	if err := env.Parse(cfg); err != nil {
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
