package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StateDir is the per-root directory holding the ledger and optional config.
const StateDir = ".decomment"

// Config holds all configuration for the decomment tool.
type Config struct {
	Clean   CleanConfig   `yaml:"clean"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	Logging LoggingConfig `yaml:"logging"`
}

// CleanConfig holds the traversal and rewrite settings.
type CleanConfig struct {
	Targets    []string `yaml:"targets"`    // directories relative to the root
	Extensions []string `yaml:"extensions"` // matched as filename suffixes
	Excludes   []string `yaml:"excludes"`   // doublestar globs relative to each target
	DryRun     bool     `yaml:"dry_run"`
}

// LedgerConfig controls the bbolt ledger of cleaned files.
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means .decomment/ledger.db under the root
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "error"
	Color bool   `yaml:"color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Targets:    []string{"frontend/src", "backend/src", "payment-server"},
			Extensions: []string{".js", ".jsx", ".css"},
			Excludes:   []string{},
		},
		Ledger: LedgerConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			Color: true,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for decomment.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "decomment.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, StateDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LedgerDBPath returns the path to the ledger database for a root.
func (c *Config) LedgerDBPath(dir string) string {
	if c.Ledger.Path != "" {
		if filepath.IsAbs(c.Ledger.Path) {
			return c.Ledger.Path
		}
		return filepath.Join(dir, c.Ledger.Path)
	}
	return LedgerDBPath(dir)
}

// LedgerDBPath returns the default ledger path under dir.
func LedgerDBPath(dir string) string {
	return filepath.Join(dir, StateDir, "ledger.db")
}

// EnsureStateDir ensures the .decomment directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, StateDir), 0755)
}
