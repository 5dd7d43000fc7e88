package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"fluidcontent/internal/core"
)

// loadProfile reads a user profile from a JSON file. An empty path yields
// an anonymous profile; the pipeline degrades gracefully without one.
func loadProfile(path string) (core.UserProfile, error) {
	if path == "" {
		return core.UserProfile{UserID: "anonymous"}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile core.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return core.UserProfile{}, fmt.Errorf("failed to parse profile file: %w", err)
	}
	if profile.UserID == "" {
		profile.UserID = "anonymous"
	}
	return profile, nil
}

// loadContent assembles a ContentInput from the title flag and either an
// inline --text value or a --file path.
func loadContent(title, description, file, text string) (core.ContentInput, error) {
	body := text
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return core.ContentInput{}, fmt.Errorf("failed to read content file: %w", err)
		}
		body = string(data)
	}

	content := core.ContentInput{
		Title:        title,
		Description:  description,
		OriginalText: body,
	}
	if err := content.Validate(); err != nil {
		return core.ContentInput{}, err
	}
	return content, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
