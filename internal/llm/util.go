// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips a surrounding markdown code fence from a model
// response. Models frequently fence JSON output even when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")

	// A bare language tag on the opening line is not part of the payload.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if firstLine != "" && len(firstLine) < 20 &&
			!strings.ContainsAny(firstLine, " {[") {
			body = body[idx+1:]
		}
	}

	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
