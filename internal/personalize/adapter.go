package personalize

import (
	"context"
	"fmt"

	"fluidcontent/internal/core"
	"fluidcontent/internal/extract"
	"fluidcontent/internal/llm"

	"google.golang.org/genai"
)

// LLMClient is the generative backend consumed by the adapter. Satisfied by
// *llm.Client; substitutable with a fake in tests.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string, options llm.TextGenerationOptions) (string, error)
}

// Adapter runs the content adaptation pipeline. Stateless; safe for
// concurrent use.
type Adapter struct {
	llmClient   LLMClient
	temperature float32
}

// NewAdapter creates an adapter around the given backend client.
func NewAdapter(llmClient LLMClient) *Adapter {
	return &Adapter{
		llmClient:   llmClient,
		temperature: 0.5,
	}
}

// CreateAdaptationSchema returns the response schema requested from the
// backend for content adaptation. Only adapted_text is required; the other
// keys are model-optional.
func CreateAdaptationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"adapted_text": {
				Type:        genai.TypeString,
				Description: "The fully adapted text, complete and ready for display",
			},
			"key_takeaways": {
				Type:        genai.TypeArray,
				Description: "3-5 key points extracted from the adapted content",
				Items: &genai.Schema{
					Type: genai.TypeString,
				},
			},
			"suggested_title": {
				Type:        genai.TypeString,
				Description: "An alternative title, if a more engaging one exists",
			},
			"sentiment_analysis": {
				Type:        genai.TypeString,
				Description: "A brief sentiment label for the adapted text",
			},
		},
		Required: []string{"adapted_text"},
	}
}

// Adapt rewrites a content item for a profile and returns the structured
// result. Backend failures surface as core.ErrGenerationFailed; output that
// cannot be decoded into the declared shape surfaces as a
// core.MalformedResponseError. Neither is retried here.
func (a *Adapter) Adapt(ctx context.Context, profile core.UserProfile, content core.ContentInput) (*core.AdaptedContent, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildAdaptationPrompt(profile, content)

	temperature := a.temperature
	if profile.Preferences.Temperature != nil {
		temperature = float32(*profile.Preferences.Temperature)
	}

	response, err := a.llmClient.GenerateText(ctx, prompt, llm.TextGenerationOptions{
		Temperature:    &temperature,
		ResponseSchema: CreateAdaptationSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adapt content %q: %w", content.Title, err)
	}

	var adapted core.AdaptedContent
	if err := extract.Structured(response, &adapted); err != nil {
		return nil, err
	}

	// Absent or null optional keys are "not provided"; a missing required
	// key means the backend ignored the schema.
	if adapted.AdaptedText == "" {
		return nil, &core.MalformedResponseError{
			Raw: response,
			Err: fmt.Errorf("response is missing required key %q", "adapted_text"),
		}
	}

	return &adapted, nil
}
