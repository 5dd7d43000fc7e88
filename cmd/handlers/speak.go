package handlers

import (
	"context"
	"fmt"

	"fluidcontent/internal/config"
	"fluidcontent/internal/tts"

	"github.com/spf13/cobra"
)

// NewSpeakCmd creates the speak command
func NewSpeakCmd() *cobra.Command {
	var (
		profilePath string
		title       string
		file        string
		text        string
		outputDir   string
		mock        bool
	)

	cmd := &cobra.Command{
		Use:   "speak",
		Short: "Synthesize content audio with the profile's voice",
		Long: `Convert content text to speech using the voice selected for a
reader profile. Requires an ElevenLabs API key unless --mock is set.

Examples:
  fluidcontent speak --profile mario.json --title "Quantum Computing" --file article.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeak(cmd.Context(), profilePath, title, file, text, outputDir, mock)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to reader profile JSON file")
	cmd.Flags().StringVar(&title, "title", "", "Content title (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to content text file")
	cmd.Flags().StringVar(&text, "text", "", "Inline content text")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Audio output directory (default from config)")
	cmd.Flags().BoolVar(&mock, "mock", false, "Write an empty marker file instead of calling the provider")

	return cmd
}

func runSpeak(ctx context.Context, profilePath, title, file, text, outputDir string, mock bool) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}
	content, err := loadContent(title, "", file, text)
	if err != nil {
		return err
	}

	cfg := config.Get()
	if outputDir == "" {
		outputDir = cfg.TTS.OutputDir
	}

	provider := tts.Provider(cfg.TTS.Provider)
	if mock {
		provider = tts.ProviderMock
	}

	client := tts.NewClient(&tts.Config{
		Provider:  provider,
		APIKey:    cfg.TTS.APIKey,
		ModelID:   cfg.TTS.Model,
		OutputDir: outputDir,
	})

	path, err := client.Synthesize(ctx, profile, content)
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	fmt.Printf("Generated %s (voice: %s)\n", path, tts.SelectVoice(profile))
	return nil
}
