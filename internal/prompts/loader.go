// Package prompts builds the LLM prompts for roadmap generation, flagship
// project design, and roadmap adaptation. Templates live in embedded JSON
// files keyed by prompt name.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

// parsed caches decoded template files so each is read and parsed once.
var (
	mu     sync.Mutex
	parsed = make(map[string]map[string]string)
)

// Get returns the template stored under key in the named file. The filename
// is bare, e.g. "careerbrain.json".
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for templates required at startup; it panics on failure.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, fmt.Sprintf("{{.%s}}", key), value)
	}
	return template
}

// List returns the prompt keys available in the named file.
func List(filename string) ([]string, error) {
	templates, err := load(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}

// ClearCache drops all cached template files. Useful for testing.
func ClearCache() {
	mu.Lock()
	parsed = make(map[string]map[string]string)
	mu.Unlock()
}

func load(filename string) (map[string]string, error) {
	mu.Lock()
	defer mu.Unlock()

	if templates, ok := parsed[filename]; ok {
		return templates, nil
	}

	data, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}
	parsed[filename] = templates
	return templates, nil
}
