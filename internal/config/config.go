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
	// Credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	GitHubToken  string `json:"github_token,omitempty"`   // GitHub token for profile enrichment

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Generation inputs (CLI one-shot mode)
	Resume         string `json:"resume,omitempty"`          // Path to resume text file
	DreamRole      string `json:"dream_role,omitempty"`      // Target role for the plan
	GitHubUsername string `json:"github_username,omitempty"` // GitHub username to enrich with

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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.DreamRole == "" {
		result.DreamRole = defaults.DreamRole
	}
	if result.GitHubUsername == "" {
		result.GitHubUsername = defaults.GitHubUsername
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv builds a Config from environment variables. File-based config
// and CLI flags take precedence over these values.
func FromEnv() Config {
	return Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
	}
}
