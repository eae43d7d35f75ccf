// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Request string `json:"request,omitempty"` // Path to simulation request JSON file
	Output  string `json:"output,omitempty"`  // Path to write the simulation result to (default: stdout)

	// Simulation
	TimeHorizon int    `json:"time_horizon,omitempty"` // Simulated years (1-30, default 10)
	Seed        *int64 `json:"seed,omitempty"`         // Fixed RNG seed for reproducible runs

	// Behavior
	Pretty      bool   `json:"pretty,omitempty"`       // Indent the JSON output
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // REST API port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TimeHorizon < 0 || c.TimeHorizon > 30 {
		return fmt.Errorf("config error: 'time_horizon' must be between 1 and 30")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	if c.Request != "" {
		if _, err := os.Stat(c.Request); os.IsNotExist(err) {
			return fmt.Errorf("config error: request file not found: %s", c.Request)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Request == "" {
		result.Request = defaults.Request
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TimeHorizon == 0 {
		result.TimeHorizon = defaults.TimeHorizon
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
