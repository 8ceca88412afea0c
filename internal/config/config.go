// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Recommendation behavior
	TopN          int     `json:"top_n,omitempty" validate:"gte=0"`           // Number of recommendations to return
	MaxVocabulary int     `json:"max_vocabulary,omitempty" validate:"gte=0"`  // TF-IDF vocabulary cap (0 = default)
	MinScore      float64 `json:"min_score,omitempty" validate:"gte=0,lte=1"` // Drop recommendations scoring below this
	Stemming      bool    `json:"stemming,omitempty"`                         // Enable suffix-stripping normalization

	// Trend outlook band thresholds; omitted values fall back to defaults.
	Trends *TrendThresholds `json:"trends,omitempty"`
}

// TrendThresholds overrides the outlook band table used by trend analysis.
type TrendThresholds struct {
	DemandRapid   float64 `json:"demand_rapid"`
	DemandDecline float64 `json:"demand_decline"`
	SalaryStrong  float64 `json:"salary_strong"`
	SalarySteady  float64 `json:"salary_steady"`
	JobsSurge     float64 `json:"jobs_surge"`
	JobsDecline   float64 `json:"jobs_decline"`
}

// DefaultTopN is used when neither config nor flags specify one.
const DefaultTopN = 5

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Trends != nil {
		if c.Trends.DemandDecline > c.Trends.DemandRapid {
			return fmt.Errorf("config error: 'trends.demand_decline' must not exceed 'trends.demand_rapid'")
		}
		if c.Trends.SalarySteady > c.Trends.SalaryStrong {
			return fmt.Errorf("config error: 'trends.salary_steady' must not exceed 'trends.salary_strong'")
		}
		if c.Trends.JobsDecline > c.Trends.JobsSurge {
			return fmt.Errorf("config error: 'trends.jobs_decline' must not exceed 'trends.jobs_surge'")
		}
	}
	return nil
}

// EffectiveTopN returns the configured top-N or the default when unset.
func (c *Config) EffectiveTopN() int {
	if c.TopN > 0 {
		return c.TopN
	}
	return DefaultTopN
}
