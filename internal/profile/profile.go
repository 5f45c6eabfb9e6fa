// Package profile models the candidate profile consumed at session creation.
// Callers may hand over opaque key/value maps (for example from a resume
// extraction tool); FromMap turns them into a typed structure with safe
// defaults for every field.
package profile

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Defaults applied when a field is missing from the incoming map.
const (
	DefaultYearsExperience = 3
	DefaultIndustry        = "technology"
	DefaultPrimarySkill    = "software development"
	DefaultKeyAchievement  = "consistently delivered projects on time"
	DefaultEducationLevel  = "Bachelors"
)

// Profile is the typed candidate profile.
type Profile struct {
	YearsExperience      int      `mapstructure:"years_experience"`
	Industry             string   `mapstructure:"industry"`
	PrimarySkill         string   `mapstructure:"primary_skill"`
	KeyAchievement       string   `mapstructure:"key_achievement"`
	EducationLevel       string   `mapstructure:"education_level"`
	LeadershipExperience bool     `mapstructure:"leadership_experience"`
	Certifications       []string `mapstructure:"certifications"`
	CompetingOffer       string   `mapstructure:"competing_offer"`
}

// Default returns a profile with every field at its documented default.
func Default() Profile {
	return Profile{
		YearsExperience: DefaultYearsExperience,
		Industry:        DefaultIndustry,
		PrimarySkill:    DefaultPrimarySkill,
		KeyAchievement:  DefaultKeyAchievement,
		EducationLevel:  DefaultEducationLevel,
		Certifications:  []string{},
	}
}

// FromMap decodes an opaque profile map, applying defaults for absent fields.
// Unknown keys are ignored; a key with an incompatible type is an error.
func FromMap(raw map[string]any) (Profile, error) {
	p := Default()
	if len(raw) == 0 {
		return p, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return p, fmt.Errorf("building profile decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return p, fmt.Errorf("decoding profile: %w", err)
	}

	if p.YearsExperience < 0 {
		p.YearsExperience = 0
	}

	return p, nil
}
