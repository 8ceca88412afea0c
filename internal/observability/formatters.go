// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the top ranked careers with their scores and a
// first line of reasoning.
func (p *Printer) PrintRecommendations(results []types.RecommendationResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total careers ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.CareerID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", result.Score))
		if result.Reasoning != "" {
			reason := result.Reasoning
			if idx := strings.Index(reason, "."); idx > 0 {
				reason = reason[:idx+1]
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RECOMMENDED CAREERS", sb.String())
}

// PrintTrendAnalysis outputs the growth metrics and outlook for one career.
func (p *Printer) PrintTrendAnalysis(analysis types.TrendAnalysis) {
	var sb strings.Builder

	if analysis.CareerID != "" {
		sb.WriteString(fmt.Sprintf("Career:  %s\n", analysis.CareerID))
	}
	sb.WriteString(fmt.Sprintf("Points:  %d\n", analysis.DataPoints))

	if analysis.InsufficientData {
		sb.WriteString("\nInsufficient data for trend analysis.")
		p.printBox("MARKET TRENDS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Demand:  %+.3f/year\n", analysis.DemandGrowth))
	sb.WriteString(fmt.Sprintf("Salary:  %+.2f%%\n", analysis.SalaryGrowth))
	sb.WriteString(fmt.Sprintf("Jobs:    %+.1f%% CAGR\n", analysis.JobPostingGrowth*100))
	sb.WriteString(fmt.Sprintf("\nOutlook: %s", analysis.Outlook))

	p.printBox("MARKET TRENDS", sb.String())
}
