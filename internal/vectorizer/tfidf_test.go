package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_EmptyCorpus(t *testing.T) {
	_, err := Fit(nil, Options{})
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFit_NegativeMaxVocabulary(t *testing.T) {
	_, err := Fit([]string{"a document"}, Options{MaxVocabulary: -1})
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFit_RowsAreUnitNorm(t *testing.T) {
	corpus, err := Fit([]string{
		"python statistics machine learning",
		"baking pastry bread",
		"python web development",
	}, Options{})
	require.NoError(t, err)
	require.Len(t, corpus.Vectors, 3)

	for i, row := range corpus.Vectors {
		assert.InDelta(t, 1.0, l2norm(row), 1e-9, "row %d", i)
	}
}

func TestFit_EmptyDocumentGetsZeroRow(t *testing.T) {
	corpus, err := Fit([]string{"python statistics", ""}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l2norm(corpus.Vectors[1]))
}

func TestFit_VocabularyCap(t *testing.T) {
	corpus, err := Fit([]string{
		"alpha alpha alpha beta beta gamma delta",
	}, Options{MaxVocabulary: 2})
	require.NoError(t, err)

	// The two most frequent terms survive.
	assert.Len(t, corpus.Vocabulary, 2)
	assert.Contains(t, corpus.Vocabulary, "alpha")
	assert.Contains(t, corpus.Vocabulary, "beta")
	assert.Len(t, corpus.IDF, 2)
}

func TestFit_DeterministicColumnOrder(t *testing.T) {
	docs := []string{"zebra apple mango", "apple mango"}
	a, err := Fit(docs, Options{})
	require.NoError(t, err)
	b, err := Fit(docs, Options{})
	require.NoError(t, err)

	assert.Equal(t, a.Vocabulary, b.Vocabulary)
	assert.Equal(t, a.Vectors, b.Vectors)

	// Columns follow alphabetical term order.
	assert.Equal(t, 0, a.Vocabulary["apple"])
	assert.Equal(t, 1, a.Vocabulary["mango"])
	assert.Equal(t, 2, a.Vocabulary["zebra"])
}

func TestTransform_SelfSimilarity(t *testing.T) {
	docs := []string{
		"python statistics machine learning",
		"baking pastry bread",
	}
	corpus, err := Fit(docs, Options{})
	require.NoError(t, err)

	vec, err := corpus.Transform(docs[0])
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dot(vec, corpus.Vectors[0]), 1e-9)
}

func TestTransform_UnseenVocabulary(t *testing.T) {
	corpus, err := Fit([]string{"python statistics"}, Options{})
	require.NoError(t, err)

	vec, err := corpus.Transform("quantum knitting")
	require.NoError(t, err)
	assert.Len(t, vec, corpus.Dimension())
	assert.Equal(t, 0.0, l2norm(vec))
}

func TestTransform_NotFitted(t *testing.T) {
	var corpus *FittedCorpus
	_, err := corpus.Transform("anything")
	require.Error(t, err)
	var nfErr *NotFittedError
	assert.ErrorAs(t, err, &nfErr)
}

func TestDimension_NilCorpus(t *testing.T) {
	var corpus *FittedCorpus
	assert.Equal(t, 0, corpus.Dimension())
}

func l2norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
