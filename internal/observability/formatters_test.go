package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.RecommendationResult{
		{CareerID: "data-scientist", Score: 0.82, Reasoning: "This career matches your profile with a 0.82 similarity score. More detail follows."},
		{CareerID: "baker", Score: 0.12},
	})

	out := buf.String()
	assert.Contains(t, out, "TOP RECOMMENDED CAREERS")
	assert.Contains(t, out, "data-scientist")
	assert.Contains(t, out, "Score: 0.82")
	// Only the first sentence of the reasoning is shown.
	assert.NotContains(t, out, "More detail follows")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	results := make([]types.RecommendationResult, 8)
	for i := range results {
		results[i] = types.RecommendationResult{CareerID: "career", Score: 0.5}
	}
	NewPrinter(&buf).PrintRecommendations(results)
	assert.Contains(t, buf.String(), "and 3 more careers")
}

func TestPrintTrendAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTrendAnalysis(types.TrendAnalysis{
		CareerID:         "data-scientist",
		DataPoints:       5,
		DemandGrowth:     0.05,
		SalaryGrowth:     2.5,
		JobPostingGrowth: 0.189,
		Outlook:          "excellent",
	})

	out := buf.String()
	assert.Contains(t, out, "MARKET TRENDS")
	assert.Contains(t, out, "data-scientist")
	assert.Contains(t, out, "excellent")
}

func TestPrintTrendAnalysis_InsufficientData(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTrendAnalysis(types.TrendAnalysis{
		CareerID:         "new-career",
		DataPoints:       1,
		InsufficientData: true,
	})
	assert.Contains(t, buf.String(), "Insufficient data")
}
