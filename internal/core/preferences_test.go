package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPreferencesUnmarshalKnownAndUnknownKeys(t *testing.T) {
	raw := `{
		"tone": "informal",
		"length": "short",
		"llm_temperature": 0.8,
		"favorite_color": "blue",
		"notifications": true
	}`

	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if p.Tone != "informal" || p.Length != "short" {
		t.Errorf("typed fields not lifted: %+v", p)
	}
	if p.Temperature == nil || *p.Temperature != 0.8 {
		t.Errorf("temperature not lifted: %v", p.Temperature)
	}
	if p.Other["favorite_color"] != "blue" {
		t.Errorf("unknown string key not routed to Other: %v", p.Other)
	}
	if p.Other["notifications"] != true {
		t.Errorf("unknown bool key not routed to Other: %v", p.Other)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	temp := 0.7
	p := Preferences{
		Tone:        "professional",
		Language:    "it",
		Temperature: &temp,
		Other:       map[string]any{"emoji": false},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Preferences
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if back.Tone != p.Tone || back.Language != p.Language {
		t.Errorf("round trip lost typed fields: %+v", back)
	}
	if back.Temperature == nil || *back.Temperature != temp {
		t.Errorf("round trip lost temperature: %v", back.Temperature)
	}
	if back.Other["emoji"] != false {
		t.Errorf("round trip lost Other keys: %v", back.Other)
	}
}

func TestPreferencesTypeMismatchGoesToOther(t *testing.T) {
	// A numeric "tone" has no typed home and must not be dropped.
	var p Preferences
	if err := json.Unmarshal([]byte(`{"tone": 5}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Tone != "" {
		t.Errorf("expected empty typed tone, got %q", p.Tone)
	}
	if _, ok := p.Other["tone"]; !ok {
		t.Error("mistyped key must be preserved in Other")
	}
}

func TestPreferencesStringDeterministic(t *testing.T) {
	p := Preferences{
		Tone:   "informal",
		Length: "short",
		Other:  map[string]any{"zeta": 1, "alpha": "x"},
	}

	first := p.String()
	for i := 0; i < 20; i++ {
		if got := p.String(); got != first {
			t.Fatalf("String not deterministic: %q vs %q", first, got)
		}
	}

	// Sorted by key: alpha < length < tone < zeta.
	if !strings.Contains(first, "alpha: x") || !strings.Contains(first, "tone: informal") {
		t.Errorf("unexpected rendering: %q", first)
	}
	if strings.Index(first, "alpha") > strings.Index(first, "zeta") {
		t.Errorf("keys not sorted: %q", first)
	}
}

func TestPreferencesStringNeverPanics(t *testing.T) {
	p := Preferences{
		Other: map[string]any{
			"nested": map[string]any{"a": []any{1, "two", nil}},
			"null":   nil,
			"number": 3.14,
			"whole":  float64(42),
		},
	}

	got := p.String()
	if got == "" {
		t.Error("expected non-empty rendering")
	}
	if !strings.Contains(got, "whole: 42") {
		t.Errorf("whole floats must render without fraction: %q", got)
	}
	if !strings.Contains(got, "null: null") {
		t.Errorf("nil must render as null: %q", got)
	}
}

func TestUserProfileMarshalPreferences(t *testing.T) {
	data, err := json.Marshal(UserProfile{UserID: "u1"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// An empty bag marshals as an explicit empty object, never as a
	// partially-populated struct literal.
	if !strings.Contains(string(data), `"preferences":{}`) {
		t.Errorf("expected empty preferences object, got %s", data)
	}

	var back UserProfile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Preferences.IsEmpty() {
		t.Errorf("round trip must keep preferences empty: %+v", back.Preferences)
	}
}

func TestPreferencesIsEmpty(t *testing.T) {
	if !(Preferences{}).IsEmpty() {
		t.Error("zero value must be empty")
	}
	if (Preferences{Tone: "x"}).IsEmpty() {
		t.Error("tone set must not be empty")
	}
	temp := 0.5
	if (Preferences{Temperature: &temp}).IsEmpty() {
		t.Error("temperature set must not be empty")
	}
	if (Preferences{Other: map[string]any{"k": "v"}}).IsEmpty() {
		t.Error("Other set must not be empty")
	}
}
