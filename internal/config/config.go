// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded
// from a JSON file. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Calendar   string `json:"calendar,omitempty"`    // Path to calendar CSV file
	ICSFeed    string `json:"ics_feed,omitempty"`    // URL or path of an ICS calendar feed
	Profile    string `json:"profile,omitempty"`     // Path to OKR profile JSON
	StyleGuide string `json:"style_guide,omitempty"` // Path to style guide JSON

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed output
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	// Validate file paths exist (if specified)
	if c.Calendar != "" {
		if _, err := os.Stat(c.Calendar); os.IsNotExist(err) {
			return fmt.Errorf("config error: calendar file not found: %s", c.Calendar)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.StyleGuide != "" {
		if _, err := os.Stat(c.StyleGuide); os.IsNotExist(err) {
			return fmt.Errorf("config error: style guide file not found: %s", c.StyleGuide)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Calendar == "" {
		result.Calendar = defaults.Calendar
	}
	if result.ICSFeed == "" {
		result.ICSFeed = defaults.ICSFeed
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.StyleGuide == "" {
		result.StyleGuide = defaults.StyleGuide
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
