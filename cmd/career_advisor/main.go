// Package main provides the career_advisor CLI: fit a career catalog into a
// TF-IDF model, score user profiles against it, and analyze market trends.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/spf13/cobra"
)

// configPathEnv names the environment variable consulted when --config is
// not given.
const configPathEnv = "CAREER_ADVISOR_CONFIG"

var rootCmd = &cobra.Command{
	Use:   "career_advisor",
	Short: "Career recommendation engine CLI",
	Long:  "career_advisor recommends careers by matching a free-text user profile against a career catalog with TF-IDF similarity, explains each match, and analyzes market trend history.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (default: $CAREER_ADVISOR_CONFIG if set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries of results")
}

// loadConfig resolves the effective configuration: the --config flag, then
// the environment variable, then built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
