// Package llm wraps the Gemini SDK behind a small client used by the
// personalization, tagging and interactive-content pipelines. The client is
// constructed explicitly and injected into its consumers; there is no
// package-level singleton.
package llm

import (
	"context"
	"fmt"
	"os"

	"fluidcontent/internal/core"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the default Gemini model for adaptation and tagging.
	DefaultModel = "gemini-2.0-flash"
	// DefaultHTMLModel is the default model for interactive HTML generation,
	// which benefits from a larger-context model.
	DefaultHTMLModel = "gemini-2.5-flash-preview-05-20"
)

// Client is a client for the Gemini generative backend.
type Client struct {
	apiKey    string
	modelName string
	gClient   *genai.Client
}

// TextGenerationOptions contains options for a single generation call.
type TextGenerationOptions struct {
	MaxTokens      int32         // Maximum number of tokens to generate
	Temperature    *float32      // Temperature for randomness (0.0 to 1.0), nil for the model default
	Model          string        // Model to use (optional, defaults to the client's model)
	ResponseSchema *genai.Schema // Optional schema hint for structured JSON output
}

// NewClient creates a new LLM client. The API key is resolved from the
// GEMINI_API_KEY environment variable (or alternatives) and falls back to
// the ai.gemini.api_key configuration key.
func NewClient(modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY"); apiKey == "" {
			if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
				apiKey = viper.GetString("ai.gemini.api_key")
			}
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required: set GEMINI_API_KEY or ai.gemini.api_key in the config file")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	ctx := context.Background()
	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		apiKey:    apiKey,
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// GenerateText executes a single, stateless generation call. Provider and
// network failures are classified as core.ErrGenerationFailed; the core
// never retries, retry policy belongs to the caller.
func (c *Client) GenerateText(ctx context.Context, prompt string, options TextGenerationOptions) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	modelName := c.modelName
	if options.Model != "" {
		modelName = options.Model
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	var config *genai.GenerateContentConfig
	if options.MaxTokens > 0 || options.Temperature != nil || options.ResponseSchema != nil {
		config = &genai.GenerateContentConfig{}
		if options.MaxTokens > 0 {
			config.MaxOutputTokens = options.MaxTokens
		}
		// An explicit zero temperature is a deliberate hint, not an unset
		// value, so nil is the only "use the model default" signal.
		if options.Temperature != nil {
			temp := *options.Temperature
			config.Temperature = &temp
		}
		if options.ResponseSchema != nil {
			config.ResponseMIMEType = "application/json"
			config.ResponseSchema = options.ResponseSchema
		}
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response from model", core.ErrGenerationFailed)
	}

	return text, nil
}

// GetModelName returns the model name used by this client.
func (c *Client) GetModelName() string {
	return c.modelName
}

// Close cleans up resources used by the client.
func (c *Client) Close() {
	// The genai client does not require explicit close.
}
