package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AI.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model: %q", cfg.AI.Gemini.Model)
	}
	if cfg.AI.Gemini.HTMLModel == "" {
		t.Error("expected a default HTML model")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("unexpected default port: %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("unexpected shutdown timeout: %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Server.CORS.Enabled {
		t.Error("expected CORS enabled by default")
	}
	if cfg.Store.Path == "" {
		t.Error("expected a default store path")
	}
	if cfg.Artifacts.OutputDir != "generated_html_files" {
		t.Errorf("unexpected artifacts dir: %q", cfg.Artifacts.OutputDir)
	}
	if cfg.TTS.Provider != "elevenlabs" {
		t.Errorf("unexpected TTS provider: %q", cfg.TTS.Provider)
	}
}

func TestLoadBindsAPIKeyEnvVariants(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
	}{
		{"canonical", "GEMINI_API_KEY"},
		{"google prefixed", "GOOGLE_GEMINI_API_KEY"},
		{"google ai", "GOOGLE_AI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			t.Setenv(tt.envVar, "test-key-123")

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.AI.Gemini.APIKey != "test-key-123" {
				t.Errorf("expected key from %s, got %q", tt.envVar, cfg.AI.Gemini.APIKey)
			}
		})
	}
}

func TestLoadBindsTTSKey(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TTS.APIKey != "xi-key" {
		t.Errorf("expected ElevenLabs key bound, got %q", cfg.TTS.APIKey)
	}
}

func TestLoadReturnsCachedConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// A later Load ignores its argument and returns the cached config,
	// even for a path that does not exist.
	second, err := Load("/nonexistent/other.yaml")
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("Load must return the cached configuration on later calls")
	}
}

func TestGetCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Get()
	second := Get()
	if first != second {
		t.Error("Get must return the cached configuration")
	}
}
