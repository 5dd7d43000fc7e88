package interactive

import (
	"context"
	"fmt"
	"time"

	"fluidcontent/internal/core"
	"fluidcontent/internal/extract"
	"fluidcontent/internal/llm"
	"fluidcontent/internal/logger"

	"github.com/google/uuid"
)

// LLMClient is the generative backend consumed by the generator.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string, options llm.TextGenerationOptions) (string, error)
}

// Generator produces interactive HTML artifacts. Stateless; safe for
// concurrent use.
type Generator struct {
	llmClient   LLMClient
	model       string  // Model override for HTML generation, empty for the client default
	temperature float32 // Default temperature when the profile carries no hint
}

// NewGenerator creates a generator around the given backend client. model
// may be empty to use the client's default.
func NewGenerator(llmClient LLMClient, model string) *Generator {
	return &Generator{
		llmClient:   llmClient,
		model:       model,
		temperature: 0.5,
	}
}

// Generate builds the concept-map prompt for the content, executes the
// generation call and recovers the HTML document from the output. Degraded
// recovery (no recognizable wrapper) still yields an artifact; the
// confidence field makes it observable. A new artifact with a new ID is
// produced on every call.
func (g *Generator) Generate(ctx context.Context, profile core.UserProfile, content core.ContentInput) (*core.HTMLArtifact, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildConceptMapPrompt(content)

	temperature := g.temperature
	if profile.Preferences.Temperature != nil {
		temperature = float32(*profile.Preferences.Temperature)
	}

	raw, err := g.llmClient.GenerateText(ctx, prompt, llm.TextGenerationOptions{
		Model:       g.model,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate interactive HTML for %q: %w", content.Title, err)
	}

	// An empty document is rejected regardless of confidence: a fenced
	// block with nothing inside extracts cleanly but carries no artifact.
	doc, confidence := extract.HTML(raw)
	if doc == "" {
		return nil, fmt.Errorf("%w: blank interactive HTML output", core.ErrGenerationFailed)
	}

	artifact := &core.HTMLArtifact{
		ID:            uuid.NewString(),
		UserID:        profile.UserID,
		ContentTitle:  content.Title,
		HTML:          doc,
		Confidence:    confidence,
		DateGenerated: time.Now().UTC(),
	}
	artifact.Filename = artifact.ID + ".html"

	if info, err := Inspect(doc); err == nil {
		logger.Debug("Generated interactive HTML artifact",
			"artifact_id", artifact.ID,
			"confidence", string(confidence),
			"doc_title", info.Title,
			"has_canvas", info.HasCanvas,
			"script_count", info.ScriptCount)
	}

	return artifact, nil
}
