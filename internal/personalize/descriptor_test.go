package personalize

import (
	"testing"

	"fluidcontent/internal/core"
)

func TestDescribeRequestFullProfile(t *testing.T) {
	age := 30
	profile := core.UserProfile{
		UserID:    "u1",
		Name:      "Mario",
		Age:       &age,
		Interests: []string{"sport", "technology"},
		Preferences: core.Preferences{
			Tone: "informal",
		},
	}
	content := core.ContentInput{
		Title:        "Quantum Computing",
		Description:  "A primer",
		OriginalText: "Qubits...",
	}

	fields := DescribeRequest(profile, content)

	if fields.UserName != "Mario" {
		t.Errorf("expected Mario, got %q", fields.UserName)
	}
	if fields.UserAge != "30" {
		t.Errorf("expected 30, got %q", fields.UserAge)
	}
	if fields.UserInterests != "sport, technology" {
		t.Errorf("unexpected interests: %q", fields.UserInterests)
	}
	if fields.UserPreferences == PlaceholderPreferences {
		t.Error("expected preferences to be rendered, got placeholder")
	}
	if fields.ContentDescription != "A primer" {
		t.Errorf("unexpected description: %q", fields.ContentDescription)
	}
}

func TestDescribeRequestAllOptionalsAbsent(t *testing.T) {
	profile := core.UserProfile{UserID: "u1"}
	content := core.ContentInput{Title: "T", OriginalText: "body"}

	fields := DescribeRequest(profile, content)

	if fields.UserName != PlaceholderName {
		t.Errorf("expected %q, got %q", PlaceholderName, fields.UserName)
	}
	if fields.UserAge != PlaceholderAge {
		t.Errorf("expected %q, got %q", PlaceholderAge, fields.UserAge)
	}
	if fields.UserInterests != PlaceholderInterests {
		t.Errorf("expected %q, got %q", PlaceholderInterests, fields.UserInterests)
	}
	if fields.UserPreferences != PlaceholderPreferences {
		t.Errorf("expected %q, got %q", PlaceholderPreferences, fields.UserPreferences)
	}
	if fields.ContentDescription != PlaceholderDescription {
		t.Errorf("expected %q, got %q", PlaceholderDescription, fields.ContentDescription)
	}
	if fields.ContentTitle != "T" || fields.OriginalText != "body" {
		t.Error("title and text must pass through unchanged")
	}
}

func TestDescribeRequestIndependentRules(t *testing.T) {
	// Age present, everything else absent: only the age rule fires.
	age := 8
	fields := DescribeRequest(
		core.UserProfile{UserID: "u1", Age: &age},
		core.ContentInput{Title: "T", OriginalText: "x"},
	)

	if fields.UserAge != "8" {
		t.Errorf("expected 8, got %q", fields.UserAge)
	}
	if fields.UserName != PlaceholderName {
		t.Errorf("name rule must not be affected by age, got %q", fields.UserName)
	}
}
