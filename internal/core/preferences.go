package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Preferences is the user's free-form preference bag. The wire format has no
// fixed schema, so known keys are lifted into typed fields while anything
// unrecognized lands in Other. Consumers must tolerate absent keys.
type Preferences struct {
	Tone          string   // e.g. "informal", "professional"
	Length        string   // e.g. "short", "detailed"
	Format        string   // e.g. "narrative", "bullet_points"
	Language      string   // e.g. "en", "it"
	Temperature   *float64 // Sampling temperature hint for generation
	LearningStyle string   // e.g. "visual", "auditory"

	// Other holds preference keys with no typed counterpart. Values may be
	// strings, numbers, booleans or nested structures.
	Other map[string]any
}

// Known preference keys on the wire.
const (
	prefKeyTone          = "tone"
	prefKeyLength        = "length"
	prefKeyFormat        = "format"
	prefKeyLanguage      = "language"
	prefKeyTemperature   = "llm_temperature"
	prefKeyLearningStyle = "learning_style"
)

// IsEmpty reports whether no preference at all was provided.
func (p Preferences) IsEmpty() bool {
	return p.Tone == "" && p.Length == "" && p.Format == "" &&
		p.Language == "" && p.Temperature == nil && p.LearningStyle == "" &&
		len(p.Other) == 0
}

// String renders the preferences as deterministic "key: value" pairs sorted
// by key, suitable for prompt interpolation. Non-string values are rendered
// with a stable generic stringification and never panic.
func (p Preferences) String() string {
	m := p.toMap()
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(stringifyPreferenceValue(m[k]))
	}
	return sb.String()
}

// toMap flattens typed fields and the Other bucket into a single map.
func (p Preferences) toMap() map[string]any {
	m := make(map[string]any, len(p.Other)+6)
	for k, v := range p.Other {
		m[k] = v
	}
	if p.Tone != "" {
		m[prefKeyTone] = p.Tone
	}
	if p.Length != "" {
		m[prefKeyLength] = p.Length
	}
	if p.Format != "" {
		m[prefKeyFormat] = p.Format
	}
	if p.Language != "" {
		m[prefKeyLanguage] = p.Language
	}
	if p.Temperature != nil {
		m[prefKeyTemperature] = *p.Temperature
	}
	if p.LearningStyle != "" {
		m[prefKeyLearningStyle] = p.LearningStyle
	}
	return m
}

// stringifyPreferenceValue renders an arbitrary preference value without
// failing. Nested structures fall back to their JSON encoding.
func stringifyPreferenceValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case float64:
		// JSON numbers decode as float64; drop the fraction when whole.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case int:
		return fmt.Sprintf("%d", val)
	default:
		if b, err := json.Marshal(val); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", val)
	}
}

// MarshalJSON flattens the typed fields back into the loose wire shape.
func (p Preferences) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toMap())
}

// UnmarshalJSON lifts known keys into typed fields and routes everything
// else into Other.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Preferences{}
	for k, v := range raw {
		switch k {
		case prefKeyTone:
			if s, ok := v.(string); ok {
				p.Tone = s
				continue
			}
		case prefKeyLength:
			if s, ok := v.(string); ok {
				p.Length = s
				continue
			}
		case prefKeyFormat:
			if s, ok := v.(string); ok {
				p.Format = s
				continue
			}
		case prefKeyLanguage:
			if s, ok := v.(string); ok {
				p.Language = s
				continue
			}
		case prefKeyTemperature:
			if f, ok := v.(float64); ok {
				p.Temperature = &f
				continue
			}
		case prefKeyLearningStyle:
			if s, ok := v.(string); ok {
				p.LearningStyle = s
				continue
			}
		}
		if p.Other == nil {
			p.Other = make(map[string]any)
		}
		p.Other[k] = v
	}
	return nil
}
