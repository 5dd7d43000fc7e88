package handlers

import (
	"context"
	"fmt"

	"fluidcontent/internal/artifacts"
	"fluidcontent/internal/config"
	"fluidcontent/internal/interactive"
	"fluidcontent/internal/llm"

	"github.com/spf13/cobra"
)

// NewInteractiveCmd creates the interactive command
func NewInteractiveCmd() *cobra.Command {
	var (
		profilePath string
		title       string
		file        string
		text        string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Generate an interactive HTML concept map",
		Long: `Generate a self-contained interactive HTML concept map for a
piece of content, personalized to a reader profile.

The document is written to the artifacts output directory and its
path printed.

Examples:
  fluidcontent interactive --profile mario.json --title "The Water Cycle" --file lesson.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), profilePath, title, file, text, outputDir)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to reader profile JSON file")
	cmd.Flags().StringVar(&title, "title", "", "Content title (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to content text file")
	cmd.Flags().StringVar(&text, "text", "", "Inline content text")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Artifact output directory (default from config)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runInteractive(ctx context.Context, profilePath, title, file, text, outputDir string) error {
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
		outputDir = cfg.Artifacts.OutputDir
	}

	llmClient, err := llm.NewClient(cfg.AI.Gemini.HTMLModel)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer llmClient.Close()

	artifact, err := interactive.NewGenerator(llmClient, cfg.AI.Gemini.HTMLModel).Generate(ctx, profile, content)
	if err != nil {
		return fmt.Errorf("HTML generation failed: %w", err)
	}

	path, err := artifacts.NewWriter(outputDir).Write(artifact)
	if err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	fmt.Printf("Generated %s (confidence: %s)\n", path, artifact.Confidence)
	return nil
}
