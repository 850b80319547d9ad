package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// DefaultPath is where the CLI looks for its config file.
const DefaultPath = ".measure/config.yaml"

// Config holds all measurekit configuration.
type Config struct {
	// Key-value store holding the user's preferences
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Home display
	Display DisplayConfig `yaml:"display"`
}

// StoreConfig selects the preferences backend.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"MEASURE_STORE_BACKEND"` // memory, sqlite, file
	Path    string `yaml:"path" env:"MEASURE_STORE_PATH"`       // empty uses the backend default
	Driver  string `yaml:"driver" env:"MEASURE_SQLITE_DRIVER"`  // sqlite (pure Go) or sqlite3 (cgo)
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"MEASURE_LOG_LEVEL"`   // debug, info, warn, error
	Format     string          `yaml:"format" env:"MEASURE_LOG_FORMAT"` // json, console
	File       string          `yaml:"file" env:"MEASURE_LOG_FILE"`     // empty logs to stderr
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DisplayConfig configures how measurements are rendered.
type DisplayConfig struct {
	Locale string `yaml:"locale" env:"MEASURE_LOCALE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Driver:  "sqlite",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Display: DisplayConfig{
			Locale: "en-US",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies MEASURE_* environment variables. Unset or empty
// variables leave the file value alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// StorePath returns the configured store path, or the backend's default
// location under .measure/.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case BackendSQLite:
		return filepath.Join(".measure", "defaults.db")
	case BackendFile:
		return filepath.Join(".measure", "defaults.yaml")
	}
	return ""
}

// ValidBackends lists all supported store backends.
var ValidBackends = []string{BackendMemory, BackendSQLite, BackendFile}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidBackends, c.Store.Backend) {
		return fmt.Errorf("invalid store backend: %q (valid: %v)", c.Store.Backend, ValidBackends)
	}
	switch c.Store.Driver {
	case "", "sqlite", "sqlite3":
	default:
		return fmt.Errorf("invalid sqlite driver: %q (valid: sqlite, sqlite3)", c.Store.Driver)
	}
	switch c.Logging.Format {
	case "", "json", "console", "text":
	default:
		return fmt.Errorf("invalid log format: %q (valid: json, console)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	return nil
}
