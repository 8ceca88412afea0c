// Package catalog loads career, profile, and trend-history records from JSON
// files and validates them before they reach the engine. It stands in for
// whatever store supplies catalog data in a deployment; the core only ever
// sees the plain structures it produces.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/types"
	"golang.org/x/sync/errgroup"
)

// LoadCatalog reads an ordered career list from a JSON file. Records missing
// an id are assigned one, so hand-written catalogs stay convenient; records
// missing a title are rejected.
func LoadCatalog(path string) ([]types.CareerDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var careers []types.CareerDocument
	if err := json.Unmarshal(data, &careers); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON %s: %w", path, err)
	}

	validate := validator.New()
	for i := range careers {
		if careers[i].ID == "" {
			careers[i].ID = uuid.NewString()
		}
		if err := validate.Struct(careers[i]); err != nil {
			return nil, fmt.Errorf("catalog record %d in %s is invalid: %w", i, path, err)
		}
	}
	return careers, nil
}

// LoadCatalogDir loads every *.json file in a directory concurrently and
// concatenates the careers in filename order, so a catalog can be split
// across files without changing ranking tie-breaks.
func LoadCatalogDir(dir string) ([]types.CareerDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", dir)
	}
	sort.Strings(files)

	perFile := make([][]types.CareerDocument, len(files))
	var g errgroup.Group
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			careers, err := LoadCatalog(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			perFile[i] = careers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.CareerDocument
	for _, careers := range perFile {
		all = append(all, careers...)
	}
	return all, nil
}

// LoadProfile reads a user profile from a JSON file.
func LoadProfile(path string) (types.UserProfile, error) {
	var profile types.UserProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile JSON %s: %w", path, err)
	}
	return profile, nil
}

// LoadTrendHistory reads per-career trend histories from a JSON file and
// sorts each history by year, since the analyzer assumes chronological order.
func LoadTrendHistory(path string) ([]types.CareerTrends, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trend history file %s: %w", path, err)
	}

	var histories []types.CareerTrends
	if err := json.Unmarshal(data, &histories); err != nil {
		return nil, fmt.Errorf("failed to parse trend history JSON %s: %w", path, err)
	}

	validate := validator.New()
	for i := range histories {
		if err := validate.Struct(histories[i]); err != nil {
			return nil, fmt.Errorf("trend history record %d in %s is invalid: %w", i, path, err)
		}
		sort.SliceStable(histories[i].Points, func(a, b int) bool {
			return histories[i].Points[a].Year < histories[i].Points[b].Year
		})
	}
	return histories, nil
}
