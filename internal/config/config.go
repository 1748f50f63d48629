// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"port-proforma/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Rates contains rate card and exchange configuration
	Rates RatesConfig `json:"rates"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`
}

// RatesConfig contains rate-related settings
type RatesConfig struct {
	// OverridesPath points to an optional HCL rates override file
	OverridesPath string `json:"overrides_path,omitempty"`

	// DefaultUSDToEUR is the fallback exchange rate (1 EUR = r USD)
	DefaultUSDToEUR float64 `json:"default_usd_to_eur"`

	// DefaultUSDToTRY is the fallback exchange rate (1 USD = r TL)
	DefaultUSDToTRY float64 `json:"default_usd_to_try"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Address: ":8080",
		},
		Rates: RatesConfig{
			DefaultUSDToEUR: 1.1801,
			DefaultUSDToTRY: 34.50,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
