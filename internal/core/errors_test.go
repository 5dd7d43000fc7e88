package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMalformedResponseError(t *testing.T) {
	inner := errors.New("invalid character 'I'")
	err := &MalformedResponseError{Raw: "I refuse.", Err: inner}

	if !strings.Contains(err.Error(), "malformed model response") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap must expose the decode error")
	}

	wrapped := fmt.Errorf("pipeline: %w", err)
	if !IsMalformedResponse(wrapped) {
		t.Error("IsMalformedResponse must see through wrapping")
	}
	var target *MalformedResponseError
	if !errors.As(wrapped, &target) || target.Raw != "I refuse." {
		t.Error("errors.As must recover the original error with its raw text")
	}
}

func TestRawPreview(t *testing.T) {
	err := &MalformedResponseError{Raw: strings.Repeat("x", 600)}

	preview := err.RawPreview(500)
	if len(preview) != 503 {
		t.Errorf("expected 500 chars plus ellipsis, got %d", len(preview))
	}
	if !strings.HasSuffix(preview, "...") {
		t.Error("truncated preview must end with an ellipsis")
	}

	short := &MalformedResponseError{Raw: "short"}
	if short.RawPreview(500) != "short" {
		t.Error("short raw text must be returned unchanged")
	}
}

func TestContentInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		content ContentInput
		want    error
	}{
		{"valid", ContentInput{Title: "T", OriginalText: "x"}, nil},
		{"missing title", ContentInput{OriginalText: "x"}, ErrMissingTitle},
		{"empty text", ContentInput{Title: "T"}, ErrEmptyContent},
		{"both missing reports title first", ContentInput{}, ErrMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.content.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
