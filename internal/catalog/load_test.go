package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalog_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.json", `[
		{"id": "ds", "title": "Data Scientist", "skills": [{"name": "Python"}]},
		{"title": "Baker", "skills": [{"name": "Baking"}]}
	]`)

	careers, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, "ds", careers[0].ID)
	assert.NotEmpty(t, careers[1].ID, "missing ids are assigned")
	assert.Equal(t, "Baker", careers[1].Title)
}

func TestLoadCatalog_MissingTitle(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.json", `[{"id": "x"}]`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoadCatalog_BadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.json", "nope")
	_, err := LoadCatalog(path)
	require.Error(t, err)
}

func TestLoadCatalogDir_FilenameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `[{"id": "second", "title": "Second"}]`)
	writeFile(t, dir, "a.json", `[{"id": "first", "title": "First"}]`)
	writeFile(t, dir, "notes.txt", "ignored")

	careers, err := LoadCatalogDir(dir)
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, "first", careers[0].ID)
	assert.Equal(t, "second", careers[1].ID)
}

func TestLoadCatalogDir_Empty(t *testing.T) {
	_, err := LoadCatalogDir(t.TempDir())
	require.Error(t, err)
}

func TestLoadProfile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "profile.json", `{
		"skills": [{"name": "Python"}],
		"interests": "data analysis",
		"education_level": "Bachelor's degree",
		"preferences": {"salary_range": "60000-90000"}
	}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	require.Len(t, profile.Skills, 1)
	assert.Equal(t, "data analysis", profile.Interests)
	require.NotNil(t, profile.Preferences)
	assert.Equal(t, "60000-90000", profile.Preferences.SalaryRange)
}

func TestLoadTrendHistory_SortsByYear(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trends.json", `[
		{"career_id": "ds", "points": [
			{"year": 2024, "demand_level": 0.7, "job_posting_count": 2000},
			{"year": 2020, "demand_level": 0.5, "job_posting_count": 1000}
		]}
	]`)

	histories, err := LoadTrendHistory(path)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Len(t, histories[0].Points, 2)
	assert.Equal(t, 2020, histories[0].Points[0].Year)
	assert.Equal(t, 2024, histories[0].Points[1].Year)
}

func TestLoadTrendHistory_MissingCareerID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trends.json", `[{"points": []}]`)
	_, err := LoadTrendHistory(path)
	require.Error(t, err)
}
