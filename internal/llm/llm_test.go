package llm

import (
	"context"
	"os"
	"testing"
)

func clearAPIKeyEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	clearAPIKeyEnv(t)

	_, err := NewClient("")
	if err == nil {
		t.Error("expected error without API key")
	}
}

func TestNewClientModelResolution(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	client, err := NewClient("custom-model")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if client.GetModelName() != "custom-model" {
		t.Errorf("expected custom-model, got %q", client.GetModelName())
	}
}

func TestNewClientDefaultModel(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if client.GetModelName() != DefaultModel {
		t.Errorf("expected %q, got %q", DefaultModel, client.GetModelName())
	}
}

func TestGenerateTextRejectsEmptyPrompt(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if _, err := client.GenerateText(context.Background(), "", TextGenerationOptions{}); err == nil {
		t.Error("expected error for empty prompt")
	}
}

// TestGenerateTextIntegration exercises a real generation call. It is
// skipped unless a genuine API key is present.
func TestGenerateTextIntegration(t *testing.T) {
	if os.Getenv("GEMINI_API_KEY") == "" || os.Getenv("RUN_LLM_INTEGRATION") == "" {
		t.Skip("Skipping integration test: set GEMINI_API_KEY and RUN_LLM_INTEGRATION to run")
	}

	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	temp := float32(0.1)
	text, err := client.GenerateText(context.Background(), "Say hello in one word.", TextGenerationOptions{
		MaxTokens:   32,
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if text == "" {
		t.Error("expected non-empty response")
	}
}
