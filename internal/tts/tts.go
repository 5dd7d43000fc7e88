package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fluidcontent/internal/core"

	"github.com/google/uuid"
)

// Provider identifies a TTS backend.
type Provider string

const (
	ProviderElevenLabs Provider = "elevenlabs"
	ProviderMock       Provider = "mock"
)

// DefaultModelID is the ElevenLabs synthesis model.
const DefaultModelID = "eleven_multilingual_v2"

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1/text-to-speech"

// Config holds TTS client configuration.
type Config struct {
	Provider   Provider
	APIKey     string
	ModelID    string
	OutputDir  string
	HTTPClient *http.Client
}

// elevenLabsRequest is the synthesis request body.
type elevenLabsRequest struct {
	Text          string                 `json:"text"`
	ModelID       string                 `json:"model_id"`
	VoiceSettings elevenLabsVoiceSetting `json:"voice_settings"`
}

type elevenLabsVoiceSetting struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Client handles text-to-speech synthesis.
type Client struct {
	config *Config
}

// NewClient creates a TTS client, filling config defaults. The caller's
// config is copied, not mutated.
func NewClient(config *Config) *Client {
	cfg := *config
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout: 60 * time.Second,
		}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated_audio"
	}
	if cfg.ModelID == "" {
		cfg.ModelID = DefaultModelID
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderElevenLabs
	}
	return &Client{config: &cfg}
}

// Synthesize selects a voice for the profile and converts the content body
// to an mp3 file in the configured output directory. Returns the full path
// of the written file.
func (c *Client) Synthesize(ctx context.Context, profile core.UserProfile, content core.ContentInput) (string, error) {
	if err := content.Validate(); err != nil {
		return "", err
	}

	voiceID := SelectVoice(profile)
	filename := uuid.NewString() + ".mp3"

	if err := os.MkdirAll(c.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(c.config.OutputDir, filename)

	switch c.config.Provider {
	case ProviderElevenLabs:
		return c.synthesizeElevenLabs(ctx, voiceID, content.OriginalText, outputPath)
	case ProviderMock:
		return c.synthesizeMock(outputPath)
	default:
		return "", fmt.Errorf("unsupported TTS provider: %s", c.config.Provider)
	}
}

// synthesizeElevenLabs streams audio from the ElevenLabs API to a file.
func (c *Client) synthesizeElevenLabs(ctx context.Context, voiceID, text, outputPath string) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("ElevenLabs API key is required")
	}

	url := fmt.Sprintf("%s/%s", elevenLabsBaseURL, voiceID)

	requestData := elevenLabsRequest{
		Text:    text,
		ModelID: c.config.ModelID,
		VoiceSettings: elevenLabsVoiceSetting{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.config.APIKey)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ElevenLabs API error %d: %s", resp.StatusCode, string(body))
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write audio data: %w", err)
	}

	return outputPath, nil
}

// synthesizeMock writes an empty marker file, for tests and offline runs.
func (c *Client) synthesizeMock(outputPath string) (string, error) {
	if err := os.WriteFile(outputPath, []byte{}, 0644); err != nil {
		return "", fmt.Errorf("failed to write mock audio file: %w", err)
	}
	return outputPath, nil
}
