package handlers

import (
	"context"
	"fmt"

	"fluidcontent/internal/config"
	"fluidcontent/internal/llm"
	"fluidcontent/internal/tags"

	"github.com/spf13/cobra"
)

// NewTagsCmd creates the tags command
func NewTagsCmd() *cobra.Command {
	var (
		title string
		file  string
		text  string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Extract topic tags from content",
		Long: `Extract up to three topic tags from a piece of content.

Tags are drawn from a fixed vocabulary; content that matches nothing
is labeled "other".

Examples:
  fluidcontent tags --title "Quantum Computing" --file article.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(cmd.Context(), title, file, text)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Content title (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path to content text file")
	cmd.Flags().StringVar(&text, "text", "", "Inline content text")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runTags(ctx context.Context, title, file, text string) error {
	content, err := loadContent(title, "", file, text)
	if err != nil {
		return err
	}

	cfg := config.Get()
	llmClient, err := llm.NewClient(cfg.AI.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer llmClient.Close()

	extracted, err := tags.NewExtractor(llmClient).Extract(ctx, content.Title, content.OriginalText)
	if err != nil {
		return fmt.Errorf("tag extraction failed: %w", err)
	}

	return printJSON(map[string][]string{"general_tags": extracted})
}
