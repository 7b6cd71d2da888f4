// Package roles provides the embedded role-skill catalog used as prompt
// context for the target role.
package roles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed roles.json
var rolesData []byte

var (
	loadOnce sync.Once
	catalog  map[string]json.RawMessage
)

func load() {
	loadOnce.Do(func() {
		catalog = make(map[string]json.RawMessage)
		// The catalog is embedded at compile time; a parse failure here
		// means a broken build, so degrade to the empty catalog.
		_ = json.Unmarshal(rolesData, &catalog)
	})
}

// List returns the known role names, sorted.
func List() []string {
	load()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Context returns the role-skill context to embed in the generation prompt.
// Unknown roles degrade to a generic one-liner rather than failing.
func Context(role string) string {
	load()
	raw, ok := catalog[role]
	if !ok {
		return fmt.Sprintf("General skills for a %s role.", role)
	}
	pretty, err := json.MarshalIndent(json.RawMessage(raw), "", "  ")
	if err != nil {
		return fmt.Sprintf("General skills for a %s role.", role)
	}
	return string(pretty)
}
