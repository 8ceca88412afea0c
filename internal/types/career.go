// Package types provides type definitions for structured data used throughout the career-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerDocument represents one catalog entry: a career with the text fields
// that feed vectorization and the structured fields that feed explanations.
// Treated as immutable once the catalog is handed to the engine.
type CareerDocument struct {
	ID                string   `json:"id" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description,omitempty"`
	Skills            []Skill  `json:"skills,omitempty" validate:"omitempty,dive"`
	EducationRequired string   `json:"education_required,omitempty"`
	WorkEnvironment   string   `json:"work_environment,omitempty"`
	AvgSalary         *float64 `json:"avg_salary,omitempty"`
	GrowthRate        *float64 `json:"growth_rate,omitempty"` // annual percent
}

// Skill is a named skill with an optional free-text description.
type Skill struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// TrendPoint is one year of market observations for a career. Sequences are
// ordered by year and appended by external import jobs; the core only reads them.
type TrendPoint struct {
	Year            int     `json:"year" validate:"required"`
	DemandLevel     float64 `json:"demand_level"` // conceptually 0-1, not clamped on read
	SalaryTrend     float64 `json:"salary_trend"` // percent change for the period
	JobPostingCount int     `json:"job_posting_count" validate:"gte=0"`
}

// CareerTrends pairs a career with its ordered trend history.
type CareerTrends struct {
	CareerID string       `json:"career_id" validate:"required"`
	Points   []TrendPoint `json:"points" validate:"omitempty,dive"`
}
