package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/model"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a user profile",
	Long:  "Scores a user profile against the career catalog and writes ranked recommendations with reasoning. Uses a saved model snapshot when given one, otherwise fits the catalog on the fly.",
	RunE:  runRecommend,
}

var (
	recommendCatalog string
	recommendProfile string
	recommendModel   string
	recommendTopN    int
	recommendOutput  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to career catalog JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to user profile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendModel, "model", "m", "", "Path to saved model snapshot (optional; fits fresh when omitted)")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top", "n", 0, "Number of recommendations (default from config)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := recommendCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	validateAgainstSchema("career_catalog.schema.json", recommendCatalog)
	careers, err := catalog.LoadCatalog(recommendCatalog)
	if err != nil {
		return err
	}

	validateAgainstSchema("user_profile.schema.json", recommendProfile)
	profile, err := catalog.LoadProfile(recommendProfile)
	if err != nil {
		return err
	}

	engine := recommend.NewEngine(recommend.Options{
		MaxVocabulary: cfg.MaxVocabulary,
		MinScore:      cfg.MinScore,
		Stemming:      cfg.Stemming,
	})
	if recommendModel != "" {
		snapshot, err := model.Load(recommendModel)
		if err != nil {
			return err
		}
		if err := engine.Restore(snapshot, careers); err != nil {
			return err
		}
	} else if err := engine.Refresh(careers); err != nil {
		return err
	}

	topN := recommendTopN
	if topN <= 0 {
		topN = cfg.EffectiveTopN()
	}
	results, err := engine.Recommend(profile, topN)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintRecommendations(results)
	}

	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if recommendOutput == "" {
		fmt.Fprintln(os.Stdout, string(output))
		return nil
	}

	outputDir := filepath.Dir(recommendOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(recommendOutput, output, 0644); err != nil {
		return fmt.Errorf("failed to write recommendations to %s: %w", recommendOutput, err)
	}

	validateAgainstSchema("recommendations.schema.json", recommendOutput)

	fmt.Fprintf(os.Stdout, "Wrote %d recommendations to %s\n", len(results), recommendOutput)
	return nil
}
