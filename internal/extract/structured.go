// Package extract recovers typed values from free-form model output. Model
// formatting is not contractually guaranteed even when a response schema is
// requested, so both modes here assume the worst: fenced, prefixed or
// outright malformed text.
package extract

import (
	"encoding/json"
	"strings"

	"fluidcontent/internal/core"
)

// Structured decodes raw model output into v, which must match the schema
// that was requested from the backend. Markdown code fences around the JSON
// are stripped for backward compatibility with models that ignore the
// response MIME type. A decode failure is classified as a
// core.MalformedResponseError carrying the raw text; the caller decides on
// retry or fallback, there is no silent recovery.
func Structured(raw string, v any) error {
	clean := StripFences(raw)

	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return &core.MalformedResponseError{Raw: raw, Err: err}
	}
	return nil
}

// StripFences removes a surrounding markdown code fence (with or without a
// language tag) from s. Input without a leading fence is returned trimmed.
func StripFences(s string) string {
	clean := strings.TrimSpace(s)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
