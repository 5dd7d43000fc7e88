// Package personalize adapts a piece of content to a user profile through a
// single stateless generation call: profile + content are rendered into a
// natural-language instruction, the backend is asked for a structured reply,
// and the reply is decoded into a typed result.
package personalize

import (
	"strconv"
	"strings"

	"fluidcontent/internal/core"
)

// Placeholder fragments used when optional profile or content fields are
// absent. Prompts embed these verbatim, so tests assert on them.
const (
	PlaceholderName        = "Unspecified user"
	PlaceholderAge         = "not specified"
	PlaceholderInterests   = "none specified"
	PlaceholderPreferences = "none specified"
	PlaceholderDescription = "no description provided"
)

// PromptFields holds the normalized text fragments interpolated into prompt
// templates. Every field is always populated; missing inputs degrade to
// fixed placeholders.
type PromptFields struct {
	UserName           string
	UserAge            string
	UserInterests      string
	UserPreferences    string
	ContentTitle       string
	ContentDescription string
	OriginalText       string
}

// DescribeRequest normalizes a profile and content pair for template
// interpolation. Each rule applies independently; no input combination
// fails, including fully empty optional fields.
func DescribeRequest(profile core.UserProfile, content core.ContentInput) PromptFields {
	fields := PromptFields{
		UserName:           PlaceholderName,
		UserAge:            PlaceholderAge,
		UserInterests:      PlaceholderInterests,
		UserPreferences:    PlaceholderPreferences,
		ContentTitle:       content.Title,
		ContentDescription: PlaceholderDescription,
		OriginalText:       content.OriginalText,
	}

	if profile.Name != "" {
		fields.UserName = profile.Name
	}
	if profile.Age != nil {
		fields.UserAge = strconv.Itoa(*profile.Age)
	}
	if len(profile.Interests) > 0 {
		fields.UserInterests = strings.Join(profile.Interests, ", ")
	}
	if !profile.Preferences.IsEmpty() {
		fields.UserPreferences = profile.Preferences.String()
	}
	if content.Description != "" {
		fields.ContentDescription = content.Description
	}

	return fields
}
