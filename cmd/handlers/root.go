// Package handlers wires the CLI commands.
package handlers

import (
	"fmt"
	"os"

	"fluidcontent/internal/config"

	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fluidcontent",
		Short: "Personalize content with AI adaptation, tagging and narration",
		Long: `FluidContent - AI Content Personalization

Adapts written content to an individual reader using their profile
(age, interests, preferences), extracts topic tags, generates
interactive HTML concept maps, and selects narration voices.

Examples:
  # Adapt an article for a reader profile
  fluidcontent adapt --profile mario.json --title "Quantum Computing" --file article.txt

  # Extract topic tags
  fluidcontent tags --title "Quantum Computing" --file article.txt

  # Generate an interactive concept map
  fluidcontent interactive --profile mario.json --title "The Water Cycle" --file lesson.txt

  # Resolve the narration voice for a profile
  fluidcontent voice --profile mario.json

  # Start the HTTP API
  fluidcontent serve --port 8080`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .fluidcontent.yaml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewAdaptCmd())
	rootCmd.AddCommand(NewTagsCmd())
	rootCmd.AddCommand(NewInteractiveCmd())
	rootCmd.AddCommand(NewVoiceCmd())
	rootCmd.AddCommand(NewSpeakCmd())

	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig reads in config file and ENV variables
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		// Don't exit - allow running with just environment variables
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
