package recommend

import (
	"testing"

	"github.com/jonathan/career-advisor/internal/vectorizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitTestCorpus(t *testing.T, docs []string) *vectorizer.FittedCorpus {
	t.Helper()
	corpus, err := vectorizer.Fit(docs, vectorizer.Options{})
	require.NoError(t, err)
	return corpus
}

func TestRank_DescendingOrder(t *testing.T) {
	corpus := fitTestCorpus(t, []string{
		"python statistics data",
		"baking bread pastry",
		"python web backend",
	})
	ids := []string{"data-scientist", "baker", "backend-dev"}

	user, err := corpus.Transform("python statistics data")
	require.NoError(t, err)

	ranked := Rank(corpus, ids, user, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "data-scientist", ranked[0].CareerID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_TopNZeroOrNegative(t *testing.T) {
	corpus := fitTestCorpus(t, []string{"alpha", "beta"})
	ids := []string{"a", "b"}
	user, err := corpus.Transform("alpha")
	require.NoError(t, err)

	assert.Empty(t, Rank(corpus, ids, user, 0))
	assert.Empty(t, Rank(corpus, ids, user, -5))
}

func TestRank_TopNBeyondCatalog(t *testing.T) {
	corpus := fitTestCorpus(t, []string{"alpha one", "beta two", "gamma three"})
	ids := []string{"a", "b", "c"}
	user, err := corpus.Transform("alpha")
	require.NoError(t, err)

	ranked := Rank(corpus, ids, user, 100)
	require.Len(t, ranked, 3)

	seen := make(map[string]int)
	for _, hit := range ranked {
		seen[hit.CareerID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, seen)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	// Two identical documents tie exactly; catalog order must survive.
	corpus := fitTestCorpus(t, []string{"python data", "python data", "baking"})
	ids := []string{"first", "second", "third"}
	user, err := corpus.Transform("python data")
	require.NoError(t, err)

	ranked := Rank(corpus, ids, user, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].CareerID)
	assert.Equal(t, "second", ranked[1].CareerID)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_ScoresWithinUnitInterval(t *testing.T) {
	corpus := fitTestCorpus(t, []string{"python data science", "python data"})
	ids := []string{"a", "b"}
	user, err := corpus.Transform("python data science")
	require.NoError(t, err)

	for _, hit := range Rank(corpus, ids, user, 2) {
		assert.GreaterOrEqual(t, hit.Score, 0.0)
		assert.LessOrEqual(t, hit.Score, 1.0)
	}
}

func TestRank_ZeroUserVector(t *testing.T) {
	corpus := fitTestCorpus(t, []string{"python data", "baking"})
	ids := []string{"a", "b"}
	user, err := corpus.Transform("completely unrelated words")
	require.NoError(t, err)

	ranked := Rank(corpus, ids, user, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0.0, ranked[0].Score)
	assert.Equal(t, 0.0, ranked[1].Score)
}
