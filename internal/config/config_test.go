package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"gemini_api_key": "test-key",
		"dream_role": "ML Engineer",
		"github_username": "octocat",
		"port": 9000,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "ML Engineer", cfg.DreamRole)
	assert.Equal(t, "octocat", cfg.GitHubUsername)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{
		Resume: "/nonexistent/resume.txt",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DreamRole: "Backend Engineer",
		Port:      8000,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		GeminiAPIKey: "default-key",
		GitHubToken:  "default-token",
		DreamRole:    "Data Engineer",
		Port:         8000,
	}

	partial := Config{
		DreamRole:      "ML Engineer",
		GitHubUsername: "octocat",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "ML Engineer", merged.DreamRole)
	assert.Equal(t, "octocat", merged.GitHubUsername)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.GeminiAPIKey)
	assert.Equal(t, "default-token", merged.GitHubToken)
	assert.Equal(t, 8000, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		DreamRole:      "ML Engineer",
		GitHubUsername: "octocat",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "ML Engineer", merged.DreamRole)
	assert.Equal(t, "octocat", merged.GitHubUsername)
}
