package tts

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"fluidcontent/internal/core"
)

func TestSynthesizeMockProvider(t *testing.T) {
	client := NewClient(&Config{
		Provider:  ProviderMock,
		OutputDir: t.TempDir(),
	})

	path, err := client.Synthesize(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "Hello."},
	)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !strings.HasSuffix(path, ".mp3") {
		t.Errorf("expected .mp3 file, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestSynthesizeValidatesContent(t *testing.T) {
	client := NewClient(&Config{Provider: ProviderMock, OutputDir: t.TempDir()})

	_, err := client.Synthesize(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{OriginalText: "no title"},
	)
	if !errors.Is(err, core.ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
}

func TestSynthesizeElevenLabsRequiresKey(t *testing.T) {
	client := NewClient(&Config{
		Provider:  ProviderElevenLabs,
		OutputDir: t.TempDir(),
	})

	_, err := client.Synthesize(context.Background(),
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)
	if err == nil {
		t.Error("expected error without API key")
	}
}

func TestNewClientDoesNotMutateCallerConfig(t *testing.T) {
	supplied := &Config{}
	client := NewClient(supplied)

	if supplied.Provider != "" || supplied.ModelID != "" || supplied.OutputDir != "" || supplied.HTTPClient != nil {
		t.Errorf("caller config must stay untouched: %+v", supplied)
	}
	if client.config == supplied {
		t.Error("client must hold its own config copy")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(&Config{})

	if client.config.Provider != ProviderElevenLabs {
		t.Errorf("expected elevenlabs default, got %s", client.config.Provider)
	}
	if client.config.ModelID != DefaultModelID {
		t.Errorf("expected default model, got %s", client.config.ModelID)
	}
	if client.config.OutputDir == "" {
		t.Error("expected a default output directory")
	}
	if client.config.HTTPClient == nil {
		t.Error("expected a default HTTP client")
	}
}
