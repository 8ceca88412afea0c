// Package vectorizer implements TF-IDF vectorization over a corpus of
// normalized career documents. A fitted corpus is immutable: refitting builds
// a new value rather than mutating the old one, so a corpus can be shared
// freely across concurrent readers.
package vectorizer

import (
	"math"
	"sort"
	"strings"
)

// DefaultMaxVocabulary bounds vocabulary size (and therefore vector width)
// when Options does not say otherwise.
const DefaultMaxVocabulary = 5000

// Options configures corpus fitting.
type Options struct {
	// MaxVocabulary caps the number of retained terms. Zero means
	// DefaultMaxVocabulary; negative values are rejected.
	MaxVocabulary int
}

// FittedCorpus holds the trained vocabulary, IDF weights, and one
// L2-normalized TF-IDF row per input document. Rows are index-aligned with
// the document sequence passed to Fit. Read-only after Fit.
type FittedCorpus struct {
	Vocabulary map[string]int `json:"vocabulary"` // term -> column index
	IDF        []float64      `json:"idf"`        // column index -> weight
	Vectors    [][]float64    `json:"vectors"`    // row per document
}

// Fit builds a vocabulary and IDF weights from the supplied documents and
// vectorizes each of them. Documents are expected to be pre-normalized
// (see the document package); tokenization here is whitespace splitting.
//
// Vocabulary selection keeps the MaxVocabulary most frequent terms across the
// corpus (ties broken alphabetically); column indices follow alphabetical
// order of the retained terms so that fitting is fully deterministic.
func Fit(documents []string, opts Options) (*FittedCorpus, error) {
	if len(documents) == 0 {
		return nil, &ConfigurationError{Reason: "no documents to fit"}
	}
	maxVocab := opts.MaxVocabulary
	if maxVocab < 0 {
		return nil, &ConfigurationError{Reason: "max vocabulary must not be negative"}
	}
	if maxVocab == 0 {
		maxVocab = DefaultMaxVocabulary
	}

	// Corpus-wide term counts and per-term document frequency.
	termCounts := make(map[string]int)
	docFreq := make(map[string]int)
	tokenized := make([][]string, len(documents))
	for i, doc := range documents {
		tokens := strings.Fields(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			termCounts[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	terms := selectVocabulary(termCounts, maxVocab)

	corpus := &FittedCorpus{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
	}
	n := float64(len(documents))
	for i, term := range terms {
		corpus.Vocabulary[term] = i
		// Smoothed IDF keeps weights finite for terms present in every document.
		corpus.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	corpus.Vectors = make([][]float64, len(documents))
	for i, tokens := range tokenized {
		corpus.Vectors[i] = corpus.vectorize(tokens)
	}

	return corpus, nil
}

// Transform vectorizes a single normalized document into the fitted feature
// space. Documents with no in-vocabulary terms produce an all-zero vector;
// only an unfitted corpus is an error.
func (c *FittedCorpus) Transform(document string) ([]float64, error) {
	if c == nil || c.Vocabulary == nil {
		return nil, &NotFittedError{Op: "Transform"}
	}
	return c.vectorize(strings.Fields(document)), nil
}

// Dimension reports the width of the fitted feature space.
func (c *FittedCorpus) Dimension() int {
	if c == nil {
		return 0
	}
	return len(c.IDF)
}

// vectorize computes a dense L2-normalized TF-IDF vector from tokens.
func (c *FittedCorpus) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(c.IDF))
	found := false
	for _, tok := range tokens {
		if idx, ok := c.Vocabulary[tok]; ok {
			vec[idx]++
			found = true
		}
	}
	if !found {
		return vec
	}

	var sumSquares float64
	for i, count := range vec {
		if count == 0 {
			continue
		}
		weighted := count * c.IDF[i]
		vec[i] = weighted
		sumSquares += weighted * weighted
	}
	norm := math.Sqrt(sumSquares)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// selectVocabulary returns up to maxVocab terms ordered alphabetically,
// choosing the highest-frequency terms when the cap bites.
func selectVocabulary(termCounts map[string]int, maxVocab int) []string {
	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}
	if len(terms) > maxVocab {
		sort.Slice(terms, func(i, j int) bool {
			if termCounts[terms[i]] != termCounts[terms[j]] {
				return termCounts[terms[i]] > termCounts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxVocab]
	}
	sort.Strings(terms)
	return terms
}
