// Package trends computes growth metrics and a qualitative outlook from a
// career's market trend history. Sparse history is an expected steady state
// for new careers, so it is reported as a structured insufficient-data result
// rather than an error.
package trends

import (
	"math"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Thresholds defines the band boundaries used to classify each growth metric
// and the overall outlook. Values are fractions (0.05 = 5%) except where a
// metric is already expressed as a yearly slope.
type Thresholds struct {
	DemandRapid   float64 // demand slope above this: rapid growth
	DemandDecline float64 // demand slope below this: declining
	SalaryStrong  float64 // mean salary trend above this: above-average raises
	SalarySteady  float64 // mean salary trend above this: steady raises
	JobsSurge     float64 // posting CAGR above this: significant increase
	JobsDecline   float64 // posting CAGR below this: decreasing
}

// DefaultThresholds mirrors the band table the recommendation engine shipped
// with. Callers with different markets can supply their own.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DemandRapid:   0.1,
		DemandDecline: -0.05,
		SalaryStrong:  0.05,
		SalarySteady:  0.02,
		JobsSurge:     0.2,
		JobsDecline:   -0.1,
	}
}

// Analyze computes a TrendAnalysis from an ordered trend history using the
// default thresholds.
func Analyze(points []types.TrendPoint) types.TrendAnalysis {
	return AnalyzeWithThresholds(points, DefaultThresholds())
}

// AnalyzeWithThresholds computes demand, salary, and job-posting growth from
// the history and classifies the outlook against the supplied thresholds.
// Fewer than two points yields an insufficient-data result with zero metrics.
func AnalyzeWithThresholds(points []types.TrendPoint, th Thresholds) types.TrendAnalysis {
	if len(points) < 2 {
		return types.TrendAnalysis{
			DataPoints:       len(points),
			InsufficientData: true,
			Outlook:          "unknown",
			Summary:          "Not enough market history to analyze trends for this career.",
		}
	}

	analysis := types.TrendAnalysis{
		DataPoints:       len(points),
		DemandGrowth:     demandSlope(points),
		SalaryGrowth:     meanSalaryTrend(points),
		JobPostingGrowth: jobPostingCAGR(points),
	}
	analysis.Outlook = classifyOutlook(analysis, th)
	analysis.Summary = buildSummary(analysis, th)
	return analysis
}

// demandSlope fits a least-squares line to demand level over year and returns
// its slope (demand units per year). A history where every point shares one
// year has no usable time axis and reports zero.
func demandSlope(points []types.TrendPoint) float64 {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.Year)
		sumX += x
		sumY += p.DemandLevel
		sumXY += x * p.DemandLevel
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// meanSalaryTrend averages the per-period salary trend percentages.
func meanSalaryTrend(points []types.TrendPoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.SalaryTrend
	}
	return sum / float64(len(points))
}

// jobPostingCAGR computes the compound annual growth rate of posting counts
// from the first to the last point. A zero starting count or zero elapsed
// years reports zero growth rather than dividing by zero.
func jobPostingCAGR(points []types.TrendPoint) float64 {
	first, last := points[0], points[len(points)-1]
	years := last.Year - first.Year
	if first.JobPostingCount <= 0 || years <= 0 {
		return 0
	}
	ratio := float64(last.JobPostingCount) / float64(first.JobPostingCount)
	return math.Pow(ratio, 1/float64(years)) - 1
}

// classifyOutlook maps the three growth metrics onto an ordered band label.
func classifyOutlook(a types.TrendAnalysis, th Thresholds) string {
	positive := 0
	for _, v := range []float64{a.DemandGrowth, a.SalaryGrowth, a.JobPostingGrowth} {
		if v > 0 {
			positive++
		}
	}
	negative := a.DemandGrowth < th.DemandDecline && a.JobPostingGrowth < th.JobsDecline

	switch {
	case positive == 3 && a.DemandGrowth > th.DemandRapid && a.JobPostingGrowth > th.JobsSurge:
		return "excellent"
	case positive == 3:
		return "very good"
	case positive == 2:
		return "good"
	case positive == 1 || (!negative && positive == 0):
		return "stable"
	default:
		return "concerning"
	}
}

// buildSummary composes one sentence per metric keyed by its band, plus an
// overall sentence keyed by the outlook label.
func buildSummary(a types.TrendAnalysis, th Thresholds) string {
	var parts []string

	switch {
	case a.DemandGrowth > th.DemandRapid:
		parts = append(parts, "Demand for this career is growing rapidly.")
	case a.DemandGrowth > 0:
		parts = append(parts, "Demand for this career is showing steady growth.")
	case a.DemandGrowth > th.DemandDecline:
		parts = append(parts, "Demand for this career is relatively stable.")
	default:
		parts = append(parts, "Demand for this career is declining.")
	}

	switch {
	case a.SalaryGrowth > th.SalaryStrong:
		parts = append(parts, "Salaries are increasing at an above-average rate.")
	case a.SalaryGrowth > th.SalarySteady:
		parts = append(parts, "Salaries are growing steadily.")
	case a.SalaryGrowth > 0:
		parts = append(parts, "Salaries are increasing slightly.")
	default:
		parts = append(parts, "Salaries are stagnant or declining.")
	}

	switch {
	case a.JobPostingGrowth > th.JobsSurge:
		parts = append(parts, "The number of job postings has increased significantly.")
	case a.JobPostingGrowth > 0:
		parts = append(parts, "The number of job postings has increased moderately.")
	case a.JobPostingGrowth > th.JobsDecline:
		parts = append(parts, "The number of job postings has remained relatively stable.")
	default:
		parts = append(parts, "The number of job postings has decreased.")
	}

	switch a.Outlook {
	case "excellent", "very good":
		parts = append(parts, "Overall, this career shows strong growth potential.")
	case "good", "stable":
		parts = append(parts, "Overall, this career shows moderate growth potential.")
	default:
		parts = append(parts, "Overall, this career may face challenges in the future.")
	}

	return strings.Join(parts, " ")
}
