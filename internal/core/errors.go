package core

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed indicates the generative backend did not return
	// usable output (network error, provider error, timeout). The core does
	// not retry; retry policy belongs to the caller.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrMissingTitle indicates a content item without a title.
	ErrMissingTitle = errors.New("content title is required")

	// ErrEmptyContent indicates a content item without body text.
	ErrEmptyContent = errors.New("content original_text must not be empty")
)

// MalformedResponseError indicates the backend returned text that could not
// be parsed into the declared structured shape. The raw text is kept for
// diagnostics.
type MalformedResponseError struct {
	Raw string // The unparseable model output
	Err error  // The underlying decode error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// RawPreview returns a truncated view of the raw response for logging.
func (e *MalformedResponseError) RawPreview(max int) string {
	if len(e.Raw) <= max {
		return e.Raw
	}
	return e.Raw[:max] + "..."
}

// IsMalformedResponse reports whether err is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}
