package extract

import (
	"strings"

	"fluidcontent/internal/core"
	"fluidcontent/internal/logger"
)

const (
	htmlFence     = "```html"
	bareFence     = "```"
	doctypePrefix = "<!doctype html>"
)

// HTML recovers an HTML document from raw model output. The output may be
// fenced as a labeled code block, fenced without a language tag, or raw.
// The function never fails: when no wrapper is recognized the original text
// is returned unchanged with ExtractionBestEffort, because forward progress
// is preferred over blocking on formatting ambiguity. Validity of the
// returned document is the caller's judgment.
func HTML(raw string) (string, core.ExtractionConfidence) {
	stripped := strings.TrimSpace(raw)

	if stripped == "" {
		return "", core.ExtractionNone
	}

	// Labeled fence: ```html ... ```
	if strings.HasPrefix(stripped, htmlFence) && strings.HasSuffix(stripped, bareFence) &&
		len(stripped) >= len(htmlFence)+len(bareFence) {
		inner := stripped[len(htmlFence) : len(stripped)-len(bareFence)]
		return strings.TrimSpace(inner), core.ExtractionExact
	}

	// Bare fence: sometimes the model omits the language tag.
	if strings.HasPrefix(stripped, bareFence) && strings.HasSuffix(stripped, bareFence) &&
		len(stripped) >= 2*len(bareFence) {
		inner := strings.TrimSpace(stripped[len(bareFence) : len(stripped)-len(bareFence)])
		if strings.HasPrefix(strings.ToLower(inner), doctypePrefix) {
			return inner, core.ExtractionExact
		}
		// A generic code block that is not HTML; do not guess further.
		logger.Warn("Generic code block in model output is not HTML, returning raw text",
			"preview", preview(raw))
		return raw, core.ExtractionBestEffort
	}

	// Direct HTML without markdown.
	if strings.HasPrefix(strings.ToLower(stripped), doctypePrefix) {
		return stripped, core.ExtractionExact
	}

	logger.Warn("Model output not recognized as an HTML block, returning raw text",
		"preview", preview(raw))
	return raw, core.ExtractionBestEffort
}

// preview truncates raw output for diagnostic logging.
func preview(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
