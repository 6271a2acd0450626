// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default values used when neither the config file nor the environment
// provides one.
const (
	DefaultPort         = 3000
	DefaultDatabasePath = "jobs.db"
	DefaultUploadDir    = "uploads"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or can be overridden
// via environment variables and CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabasePath string `json:"database_path,omitempty"` // SQLite database file
	UploadDir    string `json:"upload_dir,omitempty"`    // Directory for uploaded résumés

	// Ranking
	MaxItems int `json:"max_items,omitempty"` // Experiences kept by relevance selection

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config populated from environment variables: PORT,
// DATABASE_PATH, UPLOAD_DIR. Unset variables leave the zero value.
func FromEnv() Config {
	var cfg Config
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	cfg.UploadDir = os.Getenv("UPLOAD_DIR")
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("config error: 'max_items' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, and hard defaults applied last.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	if result.DatabasePath == "" {
		result.DatabasePath = defaults.DatabasePath
	}
	if result.DatabasePath == "" {
		result.DatabasePath = DefaultDatabasePath
	}

	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.UploadDir == "" {
		result.UploadDir = DefaultUploadDir
	}

	if result.MaxItems == 0 {
		result.MaxItems = defaults.MaxItems
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
