package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/trends"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Analyze market trend history",
	Long:  "Computes demand, salary, and job-posting growth plus a qualitative outlook for every career in a trend history file. Careers with fewer than two data points are reported as insufficient data.",
	RunE:  runTrends,
}

var (
	trendsHistory string
	trendsCareer  string
	trendsOutput  string
)

func init() {
	trendsCmd.Flags().StringVarP(&trendsHistory, "history", "H", "", "Path to trend history JSON file (required)")
	trendsCmd.Flags().StringVarP(&trendsCareer, "career", "C", "", "Only analyze this career id")
	trendsCmd.Flags().StringVarP(&trendsOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := trendsCmd.MarkFlagRequired("history"); err != nil {
		panic(fmt.Sprintf("failed to mark history flag as required: %v", err))
	}

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	validateAgainstSchema("trend_history.schema.json", trendsHistory)
	histories, err := catalog.LoadTrendHistory(trendsHistory)
	if err != nil {
		return err
	}

	if trendsCareer != "" {
		histories = filterHistories(histories, trendsCareer)
		if len(histories) == 0 {
			return fmt.Errorf("no trend history found for career %q", trendsCareer)
		}
	}

	th := thresholdsFromConfig(cfg)

	// Each history is independent; analyze them concurrently but keep the
	// input order in the output.
	analyses := make([]types.TrendAnalysis, len(histories))
	var g errgroup.Group
	for i, history := range histories {
		i, history := i, history
		g.Go(func() error {
			analysis := trends.AnalyzeWithThresholds(history.Points, th)
			analysis.CareerID = history.CareerID
			analyses[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, analysis := range analyses {
			printer.PrintTrendAnalysis(analysis)
		}
	}

	output, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trend analyses: %w", err)
	}

	if trendsOutput == "" {
		fmt.Fprintln(os.Stdout, string(output))
		return nil
	}

	outputDir := filepath.Dir(trendsOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(trendsOutput, output, 0644); err != nil {
		return fmt.Errorf("failed to write trend analyses to %s: %w", trendsOutput, err)
	}

	fmt.Fprintf(os.Stdout, "Analyzed %d careers to %s\n", len(analyses), trendsOutput)
	return nil
}

func filterHistories(histories []types.CareerTrends, careerID string) []types.CareerTrends {
	var filtered []types.CareerTrends
	for _, h := range histories {
		if h.CareerID == careerID {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// thresholdsFromConfig maps config overrides onto the analyzer's band table,
// keeping defaults for an absent block.
func thresholdsFromConfig(cfg *config.Config) trends.Thresholds {
	if cfg.Trends == nil {
		return trends.DefaultThresholds()
	}
	return trends.Thresholds{
		DemandRapid:   cfg.Trends.DemandRapid,
		DemandDecline: cfg.Trends.DemandDecline,
		SalaryStrong:  cfg.Trends.SalaryStrong,
		SalarySteady:  cfg.Trends.SalarySteady,
		JobsSurge:     cfg.Trends.JobsSurge,
		JobsDecline:   cfg.Trends.JobsDecline,
	}
}
