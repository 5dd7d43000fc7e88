package personalize

import (
	"strings"
	"testing"

	"fluidcontent/internal/core"
)

func TestBuildAdaptationPromptEmbedsProfileAndContent(t *testing.T) {
	age := 30
	profile := core.UserProfile{
		UserID:    "u1",
		Name:      "Mario",
		Age:       &age,
		Interests: []string{"sport"},
	}
	content := core.ContentInput{
		Title:        "Quantum Computing",
		OriginalText: "Qubits are the unit of quantum information.",
	}

	prompt := BuildAdaptationPrompt(profile, content)

	for _, want := range []string{
		"Name: Mario",
		"Age: 30",
		"Interests: sport",
		"Preferences: " + PlaceholderPreferences,
		"Title: Quantum Computing",
		"Qubits are the unit of quantum information.",
		`"adapted_text"`,
		`"key_takeaways"`,
		`"suggested_title"`,
		`"sentiment_analysis"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildAdaptationPromptIsPure(t *testing.T) {
	profile := core.UserProfile{UserID: "u1", Name: "Mario"}
	content := core.ContentInput{Title: "T", OriginalText: "x"}

	if BuildAdaptationPrompt(profile, content) != BuildAdaptationPrompt(profile, content) {
		t.Error("identical inputs must produce identical prompts")
	}
}

func TestBuildAdaptationPromptAnonymous(t *testing.T) {
	prompt := BuildAdaptationPrompt(
		core.UserProfile{UserID: "u1"},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)

	if !strings.Contains(prompt, "Name: "+PlaceholderName) {
		t.Error("expected name placeholder for anonymous profile")
	}
	if !strings.Contains(prompt, "Age: "+PlaceholderAge) {
		t.Error("expected age placeholder for anonymous profile")
	}
}
