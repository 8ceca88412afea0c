package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"career_catalog.schema.json",
	"user_profile.schema.json",
	"trend_history.schema.json",
	"recommendations.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestCareerCatalogSchema_AcceptsValidCatalog(t *testing.T) {
	doc := []byte(`[
		{"id": "ds", "title": "Data Scientist", "skills": [{"name": "Python"}], "avg_salary": 85000}
	]`)
	err := schemas.ValidateBytes(filepath.Join(".", "career_catalog.schema.json"), doc)
	assert.NoError(t, err)
}

func TestCareerCatalogSchema_RejectsMissingTitle(t *testing.T) {
	doc := []byte(`[{"id": "ds"}]`)
	err := schemas.ValidateBytes(filepath.Join(".", "career_catalog.schema.json"), doc)
	require.Error(t, err)
	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUserProfileSchema_RejectsMalformedSalaryRange(t *testing.T) {
	doc := []byte(`{"preferences": {"salary_range": "lots of money"}}`)
	err := schemas.ValidateBytes(filepath.Join(".", "user_profile.schema.json"), doc)
	assert.Error(t, err)
}

func TestRecommendationsSchema_AcceptsEngineOutput(t *testing.T) {
	doc := []byte(`[
		{"career_id": "ds", "score": 0.82, "reasoning": "This career matches your profile with a 0.82 similarity score."}
	]`)
	err := schemas.ValidateBytes(filepath.Join(".", "recommendations.schema.json"), doc)
	assert.NoError(t, err)
}

func TestTrendHistorySchema_RejectsNegativeCount(t *testing.T) {
	doc := []byte(`[{"career_id": "ds", "points": [{"year": 2024, "job_posting_count": -5}]}]`)
	err := schemas.ValidateBytes(filepath.Join(".", "trend_history.schema.json"), doc)
	assert.Error(t, err)
}
