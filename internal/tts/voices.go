// Package tts selects a synthesis voice for a user profile and turns
// content text into audio through the configured provider.
package tts

import (
	"fluidcontent/internal/core"
	"fluidcontent/internal/logger"
)

// AgeBucket classifies an age into the bracket used for voice selection.
type AgeBucket string

const (
	BucketChild   AgeBucket = "child"  // 0-12
	BucketTeen    AgeBucket = "teen"   // 13-19
	BucketAdult   AgeBucket = "adult"  // 20-60
	BucketSenior  AgeBucket = "senior" // 61+
	BucketUnknown AgeBucket = ""       // Age not provided
)

// voiceProfiles maps named voice slots to provider voice identifiers.
var voiceProfiles = map[string]string{
	"default":                "JBFqnCBsd6RMkjVDRZzb",
	"young_female_energetic": "09AoN6tYyW3VSTQqCo7C",
	"young_male_calm":        "TX3LPaxmHKxFdv7VOQHJ",
	"adult_female_narration": "XrExE9yKIg1WjnnlVkGX",
	"adult_male_formal":      "nPczCjzI2devNBz1zQrb",
	"senior_female_calm":     "9BWtsMINqrJLrRacOk9x",
	"senior_male_narration":  "uScy1bXtKz8vPzfdFsFw",
}

// BucketForAge returns the age bracket for an optional age.
func BucketForAge(age *int) AgeBucket {
	if age == nil {
		return BucketUnknown
	}
	switch {
	case *age <= 12:
		return BucketChild
	case *age <= 19:
		return BucketTeen
	case *age <= 60:
		return BucketAdult
	default:
		return BucketSenior
	}
}

// SelectVoice maps a profile to a synthesis voice identifier. The decision
// is evaluated top to bottom, first match wins: age-bucket-specific
// gender+style combinations, then a bucket generic voice where one exists,
// then a gender-only fallback, then the fixed default. Pure lookup; every
// profile resolves to a non-empty identifier.
func SelectVoice(profile core.UserProfile) string {
	gender := profile.VoiceGender
	style := profile.VoiceStyle

	switch BucketForAge(profile.Age) {
	case BucketChild:
		if gender == core.VoiceGenderFemale && style == core.VoiceStyleEnergetic {
			return voiceProfiles["young_female_energetic"]
		}
		if gender == core.VoiceGenderMale && style == core.VoiceStyleCalm {
			return voiceProfiles["young_male_calm"]
		}
		// Generic young voice when no specific combination is registered.
		return voiceProfiles["young_female_energetic"]

	case BucketTeen:
		if gender == core.VoiceGenderFemale && style == core.VoiceStyleNarration {
			return voiceProfiles["adult_female_narration"]
		}
		if gender == core.VoiceGenderMale && style == core.VoiceStyleFormal {
			return voiceProfiles["adult_male_formal"]
		}

	case BucketAdult:
		if gender == core.VoiceGenderFemale && style == core.VoiceStyleNarration {
			return voiceProfiles["adult_female_narration"]
		}
		if gender == core.VoiceGenderMale && style == core.VoiceStyleFormal {
			return voiceProfiles["adult_male_formal"]
		}
		if gender == core.VoiceGenderFemale {
			return voiceProfiles["adult_female_narration"]
		}
		if gender == core.VoiceGenderMale {
			return voiceProfiles["adult_male_formal"]
		}

	case BucketSenior:
		if gender == core.VoiceGenderFemale && style == core.VoiceStyleCalm {
			return voiceProfiles["senior_female_calm"]
		}
		if gender == core.VoiceGenderMale && style == core.VoiceStyleNarration {
			return voiceProfiles["senior_male_narration"]
		}
	}

	// Gender-only fallback when no age match succeeded.
	if gender == core.VoiceGenderFemale {
		return voiceProfiles["adult_female_narration"]
	}
	if gender == core.VoiceGenderMale {
		return voiceProfiles["adult_male_formal"]
	}

	logger.Debug("No specific voice for profile, using default voice",
		"user_id", profile.UserID)
	return voiceProfiles["default"]
}
