package personalize

import (
	"context"
	"errors"
	"testing"

	"fluidcontent/internal/core"
	"fluidcontent/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	// captured call
	prompt  string
	options llm.TextGenerationOptions
}

func (f *fakeClient) GenerateText(ctx context.Context, prompt string, options llm.TextGenerationOptions) (string, error) {
	f.prompt = prompt
	f.options = options
	return f.response, f.err
}

func TestAdaptFullResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"adapted_text": "Ciao Mario! Ecco il testo.",
		"key_takeaways": ["one", "two", "three"],
		"suggested_title": "A Better Title",
		"sentiment_analysis": "Positive"
	}`}
	adapter := NewAdapter(client)

	adapted, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1", Name: "Mario"},
		core.ContentInput{Title: "T", OriginalText: "original"},
	)
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	if adapted.AdaptedText != "Ciao Mario! Ecco il testo." {
		t.Errorf("unexpected adapted text: %q", adapted.AdaptedText)
	}
	if len(adapted.KeyTakeaways) != 3 {
		t.Errorf("expected 3 takeaways, got %v", adapted.KeyTakeaways)
	}
	if adapted.SuggestedTitle != "A Better Title" {
		t.Errorf("unexpected title: %q", adapted.SuggestedTitle)
	}
	if adapted.SentimentAnalysis != "Positive" {
		t.Errorf("unexpected sentiment: %q", adapted.SentimentAnalysis)
	}
}

func TestAdaptOptionalKeysAbsent(t *testing.T) {
	client := &fakeClient{response: `{"adapted_text": "just the text"}`}
	adapter := NewAdapter(client)

	adapted, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	if adapted.AdaptedText != "just the text" {
		t.Errorf("unexpected adapted text: %q", adapted.AdaptedText)
	}
	if adapted.KeyTakeaways != nil || adapted.SuggestedTitle != "" || adapted.SentimentAnalysis != "" {
		t.Errorf("expected absent optionals to stay zero: %+v", adapted)
	}
}

func TestAdaptFencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"adapted_text\": \"ok\"}\n```"}
	adapter := NewAdapter(client)

	adapted, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if err != nil {
		t.Fatalf("Adapt failed on fenced response: %v", err)
	}
	if adapted.AdaptedText != "ok" {
		t.Errorf("unexpected adapted text: %q", adapted.AdaptedText)
	}
}

func TestAdaptValidatesContent(t *testing.T) {
	adapter := NewAdapter(&fakeClient{response: `{"adapted_text": "x"}`})

	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{OriginalText: "x"},
	)
	if !errors.Is(err, core.ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}

	_, err = adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T"},
	)
	if !errors.Is(err, core.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestAdaptBackendFailure(t *testing.T) {
	adapter := NewAdapter(&fakeClient{err: core.ErrGenerationFailed})

	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if !errors.Is(err, core.ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestAdaptMalformedResponse(t *testing.T) {
	adapter := NewAdapter(&fakeClient{response: "I'm sorry, I cannot do that."})

	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)

	var malformed *core.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if malformed.Raw != "I'm sorry, I cannot do that." {
		t.Errorf("expected raw text preserved, got %q", malformed.Raw)
	}
}

func TestAdaptSchemaIgnoredByBackend(t *testing.T) {
	// Valid JSON, but the required key is missing entirely.
	adapter := NewAdapter(&fakeClient{response: `{"suggested_title": "only a title"}`})

	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)

	var malformed *core.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError for missing adapted_text, got %v", err)
	}
}

func TestAdaptTemperatureOverride(t *testing.T) {
	client := &fakeClient{response: `{"adapted_text": "x"}`}
	adapter := NewAdapter(client)

	temp := 0.9
	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1", Preferences: core.Preferences{Temperature: &temp}},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	if client.options.Temperature == nil || *client.options.Temperature != 0.9 {
		t.Errorf("expected temperature override 0.9, got %v", client.options.Temperature)
	}
	if client.options.ResponseSchema == nil {
		t.Error("expected a response schema to be requested")
	}
}

func TestAdaptZeroTemperatureOverride(t *testing.T) {
	// An explicit zero is a deliberate determinism hint and must reach the
	// backend rather than falling back to the adapter default.
	client := &fakeClient{response: `{"adapted_text": "x"}`}
	adapter := NewAdapter(client)

	temp := 0.0
	_, err := adapter.Adapt(context.Background(),
		core.UserProfile{UserID: "u1", Preferences: core.Preferences{Temperature: &temp}},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	if client.options.Temperature == nil || *client.options.Temperature != 0 {
		t.Errorf("expected explicit zero temperature, got %v", client.options.Temperature)
	}
}
