package handlers

import (
	"context"
	"fmt"

	"fluidcontent/internal/config"
	"fluidcontent/internal/llm"
	"fluidcontent/internal/personalize"

	"github.com/spf13/cobra"
)

// NewAdaptCmd creates the adapt command
func NewAdaptCmd() *cobra.Command {
	var (
		profilePath string
		title       string
		description string
		file        string
		text        string
	)

	cmd := &cobra.Command{
		Use:   "adapt",
		Short: "Adapt content to a reader profile",
		Long: `Adapt a piece of content to an individual reader.

The reader profile is a JSON file with name, age, interests and
preferences. Missing profile fields degrade to neutral placeholders.

Examples:
  # Adapt an article for Mario
  fluidcontent adapt --profile mario.json --title "Quantum Computing" --file article.txt

  # Adapt inline text anonymously
  fluidcontent adapt --title "Greetings" --text "Hello, world."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdapt(cmd.Context(), profilePath, title, description, file, text)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to reader profile JSON file")
	cmd.Flags().StringVar(&title, "title", "", "Content title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Optional content description")
	cmd.Flags().StringVar(&file, "file", "", "Path to content text file")
	cmd.Flags().StringVar(&text, "text", "", "Inline content text")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runAdapt(ctx context.Context, profilePath, title, description, file, text string) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}
	content, err := loadContent(title, description, file, text)
	if err != nil {
		return err
	}

	cfg := config.Get()
	llmClient, err := llm.NewClient(cfg.AI.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer llmClient.Close()

	adapted, err := personalize.NewAdapter(llmClient).Adapt(ctx, profile, content)
	if err != nil {
		return fmt.Errorf("adaptation failed: %w", err)
	}

	return printJSON(adapted)
}
