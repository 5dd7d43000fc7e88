package handlers

import (
	"fmt"

	"fluidcontent/internal/tts"

	"github.com/spf13/cobra"
)

// NewVoiceCmd creates the voice command
func NewVoiceCmd() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Resolve the narration voice for a reader profile",
		Long: `Resolve which synthesis voice would narrate content for a
reader profile. Selection considers age bracket, preferred voice
gender and style, and always resolves to a voice.

Examples:
  fluidcontent voice --profile mario.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoice(profilePath)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to reader profile JSON file")

	return cmd
}

func runVoice(profilePath string) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	fmt.Println(tts.SelectVoice(profile))
	return nil
}
