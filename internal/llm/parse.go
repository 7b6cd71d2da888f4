// Package llm - parse.go turns raw generator text into a free-form object.
package llm

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/kaptinlin/jsonrepair"
)

// ParseObject parses generator output into a free-form JSON object. Markdown
// fences are stripped first; if strict parsing fails the text is run through
// jsonrepair before giving up. A non-object top level is an error: the
// pipeline treats any error here as "call produced nothing usable".
func ParseObject(text string) (map[string]any, error) {
	cleaned := CleanJSONBlock(text)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return nil, fmt.Errorf("response is not valid JSON and could not be repaired: %w", err)
	}
	log.Printf("[Career Brain] repaired malformed JSON response (%d -> %d chars)", len(cleaned), len(repaired))

	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, fmt.Errorf("repaired response is still not a JSON object: %w", err)
	}
	return obj, nil
}
