// Package tags assigns general category labels to articles from a fixed
// controlled vocabulary, with a single "other" fallback when nothing fits.
package tags

import (
	"context"
	"fmt"
	"strings"

	"fluidcontent/internal/extract"
	"fluidcontent/internal/llm"

	"google.golang.org/genai"
)

// FallbackTag is the single label used when no vocabulary category fits.
const FallbackTag = "other"

// Vocabulary is the fixed set of general category tags, all lowercase.
var Vocabulary = []string{
	"technology",
	"artificial intelligence",
	"business",
	"finance",
	"science",
	"environment",
	"politics",
	"society",
	"culture",
	"lifestyle",
	"health",
	"education",
	"sports",
	"world news",
	"opinion",
	"guide/how-to",
}

// LLMClient is the generative backend consumed by the extractor.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string, options llm.TextGenerationOptions) (string, error)
}

// Extractor classifies articles into vocabulary tags using the LLM.
// Stateless; safe for concurrent use.
type Extractor struct {
	llmClient LLMClient
}

// NewExtractor creates a new tag extractor.
func NewExtractor(llmClient LLMClient) *Extractor {
	return &Extractor{llmClient: llmClient}
}

// CreateTagSchema returns the response schema for tag extraction: a single
// "general_tags" key holding the label list.
func CreateTagSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"general_tags": {
				Type:        genai.TypeArray,
				Description: "The selected general category tags, all lowercase",
				Items: &genai.Schema{
					Type: genai.TypeString,
				},
			},
		},
		Required: []string{"general_tags"},
	}
}

// buildExtractionPrompt creates the tag extraction prompt for an article.
func buildExtractionPrompt(title, body string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert content categorization AI. Your task is to analyze the provided article (title and text) and assign it one or at most three primary general category tags from the predefined list below.\n\n")
	sb.WriteString("Your goal is to select the most relevant and dominant category (or categories, if the article clearly spans two primary areas).\n\n")

	sb.WriteString("PREDEFINED GENERAL CATEGORY TAGS:\n")
	for _, tag := range Vocabulary {
		sb.WriteString("- ")
		sb.WriteString(tag)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Read the article title and text carefully to understand its main subject matter and purpose.\n")
	sb.WriteString("2. Choose the single most fitting category from the predefined list.\n")
	sb.WriteString("3. If the article strongly and clearly covers two primary categories from the list, you may select a second one. Do not select more than two.\n")
	sb.WriteString("4. If, after careful consideration, none of the predefined categories accurately and primarily describe the article's main focus, you MUST output only the tag \"other\".\n")
	sb.WriteString("5. Your output must be a JSON object with a single key \"general_tags\", which is a list containing the selected tag(s) (e.g., [\"technology\"] or [\"business\", \"finance\"] or [\"other\"]).\n")
	sb.WriteString("6. All tags in the output list must be in lowercase.\n")
	sb.WriteString("7. Do not include any other text, explanation, or reasoning outside of the JSON object.\n\n")

	sb.WriteString("Article Title:\n---\n")
	sb.WriteString(title)
	sb.WriteString("\n---\n\n")

	sb.WriteString("Article Text:\n---\n")
	sb.WriteString(body)
	sb.WriteString("\n---\n\n")

	sb.WriteString("Provide your output as a JSON object:\n")

	return sb.String()
}

// Extract assigns one to three lowercase vocabulary tags to an article, or
// the single fallback tag when nothing fits. Unknown labels returned by the
// model are dropped; an output with no usable label degrades to the
// fallback rather than failing.
func (e *Extractor) Extract(ctx context.Context, title, body string) ([]string, error) {
	prompt := buildExtractionPrompt(title, body)

	response, err := e.llmClient.GenerateText(ctx, prompt, llm.TextGenerationOptions{
		Temperature:    genai.Ptr[float32](0.3), // Low temperature for consistent classification
		MaxTokens:      256,
		ResponseSchema: CreateTagSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract tags for %q: %w", title, err)
	}

	var parsed struct {
		GeneralTags []string `json:"general_tags"`
	}
	if err := extract.Structured(response, &parsed); err != nil {
		return nil, err
	}

	return normalizeTags(parsed.GeneralTags), nil
}

// normalizeTags lowercases labels, keeps only vocabulary entries, caps the
// count at three and collapses to the fallback when needed. The fallback is
// exclusive: it never appears alongside other labels.
func normalizeTags(raw []string) []string {
	known := make(map[string]bool, len(Vocabulary))
	for _, tag := range Vocabulary {
		known[tag] = true
	}

	var tags []string
	seen := make(map[string]bool)
	for _, label := range raw {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == FallbackTag || !known[label] || seen[label] {
			continue
		}
		seen[label] = true
		tags = append(tags, label)
		if len(tags) == 3 {
			break
		}
	}

	if len(tags) == 0 {
		return []string{FallbackTag}
	}
	return tags
}
