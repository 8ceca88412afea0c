package types

// UserProfile represents the free-text assessment data collected for one user.
// Every field is optional; a sparse profile still produces a valid (short)
// document for scoring.
type UserProfile struct {
	Skills            []Skill          `json:"skills,omitempty"`
	Interests         string           `json:"interests,omitempty"`
	Strengths         string           `json:"strengths,omitempty"`
	PersonalityTraits string           `json:"personality_traits,omitempty"`
	EducationLevel    string           `json:"education_level,omitempty"`
	Preferences       *UserPreferences `json:"preferences,omitempty"`
}

// UserPreferences holds optional job preferences. Presence is a nil check on
// the field, never a capability probe.
type UserPreferences struct {
	SalaryRange string `json:"salary_range,omitempty"` // "min-max", e.g. "60000-90000"
	Location    string `json:"location,omitempty"`
}
