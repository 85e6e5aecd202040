// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Paths
	Snapshot    string `json:"snapshot,omitempty"`     // Path to provider snapshot JSON file
	ProfilePath string `json:"profile_path,omitempty"` // Path to persisted user profile file

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// External services
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	MapboxToken  string `json:"mapbox_token,omitempty"`   // Mapbox geocoding access token
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key for the concierge chat
	GeminiModel  string `json:"gemini_model,omitempty"`   // Gemini model name

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// FromEnv returns a Config populated from environment variables. Unset
// variables leave fields empty.
func FromEnv() Config {
	cfg := Config{
		Snapshot:     os.Getenv("SNAPSHOT_PATH"),
		ProfilePath:  os.Getenv("PROFILE_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		MapboxToken:  os.Getenv("MAPBOX_ACCESS_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Snapshot != "" {
		if _, err := os.Stat(c.Snapshot); os.IsNotExist(err) {
			return fmt.Errorf("config error: snapshot file not found: %s", c.Snapshot)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Snapshot == "" {
		result.Snapshot = defaults.Snapshot
	}
	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MapboxToken == "" {
		result.MapboxToken = defaults.MapboxToken
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
