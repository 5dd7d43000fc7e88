package core

import "time"

// VoiceGender is a user's preferred synthesis voice gender.
type VoiceGender string

const (
	VoiceGenderFemale  VoiceGender = "female"
	VoiceGenderMale    VoiceGender = "male"
	VoiceGenderNeutral VoiceGender = "neutral"
)

// VoiceStyle is a user's preferred synthesis voice style.
type VoiceStyle string

const (
	VoiceStyleCalm      VoiceStyle = "calm"
	VoiceStyleEnergetic VoiceStyle = "energetic"
	VoiceStyleFormal    VoiceStyle = "formal"
	VoiceStyleNarration VoiceStyle = "narration"
)

// UserProfile describes the user a piece of content is being personalized for.
// Every field except UserID is optional; consumers must degrade gracefully.
type UserProfile struct {
	UserID      string      `json:"user_id"`                // Opaque unique identifier
	Name        string      `json:"name,omitempty"`         // Display name, empty if not provided
	Age         *int        `json:"age,omitempty"`          // Age in years, nil if not provided (>= 0 when set)
	Interests   []string    `json:"interests,omitempty"`    // Personal interests, order irrelevant
	Preferences Preferences `json:"preferences"`            // Free-form preference bag, {} when empty (see preferences.go)
	VoiceGender VoiceGender `json:"voice_gender,omitempty"` // Preferred voice gender, empty if none
	VoiceStyle  VoiceStyle  `json:"voice_style,omitempty"`  // Preferred voice style, empty if none
}

// ContentInput is the original text and metadata to be transformed.
type ContentInput struct {
	Title        string `json:"title"`                 // Required
	Description  string `json:"description,omitempty"` // Optional short description
	OriginalText string `json:"original_text"`         // Required, at least 1 character
}

// Validate checks the ContentInput invariants.
func (c ContentInput) Validate() error {
	if c.Title == "" {
		return ErrMissingTitle
	}
	if len(c.OriginalText) == 0 {
		return ErrEmptyContent
	}
	return nil
}

// AdaptationRequest pairs exactly one profile with exactly one content item.
type AdaptationRequest struct {
	Profile UserProfile  `json:"profile"`
	Content ContentInput `json:"content"`
}

// AdaptedContent is the personalized rendition of a content item.
// Only AdaptedText is guaranteed; the other fields are model-optional.
type AdaptedContent struct {
	AdaptedText       string   `json:"adapted_text"`                 // The fully adapted text, ready for display
	KeyTakeaways      []string `json:"key_takeaways,omitempty"`      // 3-5 key points (soft guidance, not enforced)
	SuggestedTitle    string   `json:"suggested_title,omitempty"`    // Alternative title, if the model offered one
	SentimentAnalysis string   `json:"sentiment_analysis,omitempty"` // Free-form sentiment label (e.g. "Positive")
}

// ExtractionConfidence classifies how an HTML document was recovered from
// raw model output. Degraded recovery is observable, not an error.
type ExtractionConfidence string

const (
	// ExtractionExact means a recognized wrapper (fenced block or bare
	// doctype) was identified and handled.
	ExtractionExact ExtractionConfidence = "exact"
	// ExtractionBestEffort means no wrapper was recognized and the raw
	// text was returned unchanged.
	ExtractionBestEffort ExtractionConfidence = "best_effort"
	// ExtractionNone means the input was empty or whitespace only.
	ExtractionNone ExtractionConfidence = "none"
)

// HTMLArtifact is a generated interactive HTML document. Artifacts are
// written once and never updated; a new request always produces a new
// artifact with a new ID.
type HTMLArtifact struct {
	ID            string               `json:"id"`             // Collision-resistant unique identifier (UUID)
	UserID        string               `json:"user_id"`        // Profile the artifact was generated for
	ContentTitle  string               `json:"content_title"`  // Title of the originating content
	Filename      string               `json:"filename"`       // "{id}.html"
	HTML          string               `json:"html"`           // The complete document
	Confidence    ExtractionConfidence `json:"confidence"`     // How the document was recovered from model output
	DateGenerated time.Time            `json:"date_generated"` // When the artifact was produced
}

// User is a registered account in the CRUD surface.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Age         *int      `json:"age,omitempty"`
	Interests   []string  `json:"interests,omitempty"`
	Points      int       `json:"points"`
	DateCreated time.Time `json:"date_created"`
}

// Article is a stored piece of content with its extracted tags.
type Article struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags,omitempty"` // Lowercase labels from the tag vocabulary
	DateCreated time.Time `json:"date_created"`
}

// Achievement is an unlockable badge definition.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Icon        string `json:"icon,omitempty"`
}

// UserAchievement records an achievement unlocked by a user.
type UserAchievement struct {
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	DateUnlocked  time.Time `json:"date_unlocked"`
}

// LeaderboardEntry is a user's position in the points leaderboard.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}

// Configuration is a named application setting stored server-side.
type Configuration struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	DateUpdated time.Time `json:"date_updated"`
}
