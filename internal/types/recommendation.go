package types

// RecommendationResult is one ranked career returned to the caller. Produced
// fresh per request; the core does not cache results.
type RecommendationResult struct {
	CareerID  string  `json:"career_id"`
	Score     float64 `json:"score"` // cosine similarity in [0,1]
	Reasoning string  `json:"reasoning"`
}

// TrendAnalysis is the derived aggregate computed from a career's trend
// history. When InsufficientData is true the growth figures are zero and
// Outlook/Summary describe the missing history rather than a forecast.
type TrendAnalysis struct {
	CareerID         string  `json:"career_id,omitempty"`
	DataPoints       int     `json:"data_points"`
	InsufficientData bool    `json:"insufficient_data,omitempty"`
	DemandGrowth     float64 `json:"demand_growth"`      // least-squares slope per year
	SalaryGrowth     float64 `json:"salary_growth"`      // mean percent change
	JobPostingGrowth float64 `json:"job_posting_growth"` // CAGR, fractional
	Outlook          string  `json:"outlook"`            // band label
	Summary          string  `json:"summary"`
}
