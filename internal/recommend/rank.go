// Package recommend ranks careers against a user vector and drives the full
// recommendation flow through an engine that owns the fitted corpus.
package recommend

import (
	"sort"

	"github.com/jonathan/career-advisor/internal/vectorizer"
)

// Scored pairs a career identifier with its cosine similarity to the user.
type Scored struct {
	CareerID string  `json:"career_id"`
	Score    float64 `json:"score"`
}

// Rank computes the cosine similarity between the user vector and every
// corpus row (a plain dot product, since rows are L2-normalized) and returns
// the topN highest-scoring careers. The sort is stable and descending, so
// ties keep catalog order. topN <= 0 returns an empty slice; topN beyond the
// catalog returns everything. Threshold filtering is deliberately left to
// callers.
func Rank(corpus *vectorizer.FittedCorpus, careerIDs []string, userVector []float64, topN int) []Scored {
	if topN <= 0 || corpus == nil || len(careerIDs) == 0 {
		return []Scored{}
	}

	scored := make([]Scored, 0, len(careerIDs))
	for i, id := range careerIDs {
		if i >= len(corpus.Vectors) {
			break
		}
		scored = append(scored, Scored{CareerID: id, Score: clampScore(dot(userVector, corpus.Vectors[i]))})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// clampScore guards against floating-point overshoot beyond [0, 1].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
