package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/model"
	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit a TF-IDF model over a career catalog",
	Long:  "Builds career documents from a catalog file (or directory of files), fits the TF-IDF vectorizer, and saves the fitted model snapshot for later recommend runs.",
	RunE:  runTrain,
}

var (
	trainCatalog    string
	trainCatalogDir string
	trainOutput     string
)

func init() {
	trainCmd.Flags().StringVarP(&trainCatalog, "catalog", "c", "", "Path to career catalog JSON file")
	trainCmd.Flags().StringVarP(&trainCatalogDir, "catalog-dir", "d", "", "Path to directory of career catalog JSON files")
	trainCmd.Flags().StringVarP(&trainOutput, "out", "o", "", "Path to output model snapshot JSON file (required)")

	if err := trainCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	trainCmd.MarkFlagsMutuallyExclusive("catalog", "catalog-dir")
	trainCmd.MarkFlagsOneRequired("catalog", "catalog-dir")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	careers, err := loadCareers()
	if err != nil {
		return err
	}

	engine := recommend.NewEngine(recommend.Options{
		MaxVocabulary: cfg.MaxVocabulary,
		MinScore:      cfg.MinScore,
		Stemming:      cfg.Stemming,
	})
	if err := engine.Refresh(careers); err != nil {
		return err
	}

	snapshot, err := engine.Snapshot()
	if err != nil {
		return err
	}
	if err := model.Save(trainOutput, snapshot); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Fitted %d careers (%d terms) into %s\n", len(careers), len(snapshot.Vocabulary), trainOutput)
	return nil
}

// loadCareers reads the catalog from whichever source flag was given, after
// an optional (non-fatal) schema check on single-file catalogs.
func loadCareers() ([]types.CareerDocument, error) {
	if trainCatalogDir != "" {
		return catalog.LoadCatalogDir(trainCatalogDir)
	}
	validateAgainstSchema("career_catalog.schema.json", trainCatalog)
	return catalog.LoadCatalog(trainCatalog)
}

// validateAgainstSchema checks a document against a bundled schema when the
// schema can be located. Violations are warnings: the loaders do their own
// structural validation, so a missing schema file never blocks a run.
func validateAgainstSchema(schemaName, documentPath string) {
	schemaPath := schemas.Resolve(schemaName)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateFile(schemaPath, documentPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", documentPath, err)
	}
}
