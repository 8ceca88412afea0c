package recommend

import (
	"fmt"
	"sync/atomic"

	"github.com/jonathan/career-advisor/internal/document"
	"github.com/jonathan/career-advisor/internal/explain"
	"github.com/jonathan/career-advisor/internal/model"
	"github.com/jonathan/career-advisor/internal/textproc"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/jonathan/career-advisor/internal/vectorizer"
)

// Options configures an Engine.
type Options struct {
	// MaxVocabulary caps the TF-IDF vocabulary; zero uses the vectorizer default.
	MaxVocabulary int
	// MinScore drops recommendations scoring below it. Zero disables the
	// filter; it is a caller policy, not part of ranking itself.
	MinScore float64
	// Stemming enables suffix stripping during normalization.
	Stemming bool
}

// corpusState is the immutable unit published by Refresh: a fitted corpus
// with its index-aligned careers. Readers always observe one complete state.
type corpusState struct {
	corpus  *vectorizer.FittedCorpus
	careers []types.CareerDocument
	ids     []string
}

// Engine is the recommendation entry point. It holds the single piece of
// shared state in the system, the current fitted corpus, behind an atomic
// pointer: Refresh builds a replacement off to the side and publishes it with
// one swap, so concurrent Recommend calls never see a partially fitted
// vocabulary/vector pair.
type Engine struct {
	opts    Options
	builder *document.Builder
	state   atomic.Pointer[corpusState]
}

// NewEngine builds an engine with no fitted corpus. Recommend fails until
// Refresh or Restore succeeds.
func NewEngine(opts Options) *Engine {
	normalizer := textproc.NewNormalizer(textproc.Options{Stemming: opts.Stemming})
	return &Engine{
		opts:    opts,
		builder: document.NewBuilder(normalizer),
	}
}

// Refresh fits a new corpus over the catalog and atomically replaces the
// current one. User vectors computed against the old corpus are not
// index-compatible with the new space; callers must re-score after a refresh.
func (e *Engine) Refresh(careers []types.CareerDocument) error {
	docs := make([]string, len(careers))
	ids := make([]string, len(careers))
	snapshot := make([]types.CareerDocument, len(careers))
	for i, career := range careers {
		docs[i] = e.builder.CareerDocument(career)
		ids[i] = career.ID
		snapshot[i] = career
	}

	corpus, err := vectorizer.Fit(docs, vectorizer.Options{MaxVocabulary: e.opts.MaxVocabulary})
	if err != nil {
		return fmt.Errorf("failed to fit career corpus: %w", err)
	}

	e.state.Store(&corpusState{corpus: corpus, careers: snapshot, ids: ids})
	return nil
}

// Recommend scores the profile against every career and returns the topN
// results with reasoning, in descending score order. Calling it before a
// corpus exists is a hard failure.
func (e *Engine) Recommend(profile types.UserProfile, topN int) ([]types.RecommendationResult, error) {
	state := e.state.Load()
	if state == nil {
		return nil, &vectorizer.NotFittedError{Op: "Recommend"}
	}

	userVector, err := state.corpus.Transform(e.builder.UserDocument(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to vectorize user profile: %w", err)
	}

	indexByID := make(map[string]int, len(state.ids))
	for i, id := range state.ids {
		indexByID[id] = i
	}

	ranked := Rank(state.corpus, state.ids, userVector, topN)
	results := make([]types.RecommendationResult, 0, len(ranked))
	for _, hit := range ranked {
		if e.opts.MinScore > 0 && hit.Score < e.opts.MinScore {
			continue
		}
		career := state.careers[indexByID[hit.CareerID]]
		results = append(results, types.RecommendationResult{
			CareerID:  hit.CareerID,
			Score:     hit.Score,
			Reasoning: explain.Generate(career, profile, hit.Score),
		})
	}
	return results, nil
}

// CatalogSize reports how many careers the current corpus covers.
func (e *Engine) CatalogSize() int {
	state := e.state.Load()
	if state == nil {
		return 0
	}
	return len(state.ids)
}

// Snapshot captures the current fitted corpus for persistence.
func (e *Engine) Snapshot() (*model.Snapshot, error) {
	state := e.state.Load()
	if state == nil {
		return nil, &vectorizer.NotFittedError{Op: "Snapshot"}
	}
	return model.New(state.corpus, state.ids)
}

// Restore publishes a previously saved corpus. The catalog must contain every
// career the snapshot references so that explanations have their structured
// fields; careers are re-ordered to match the snapshot's id list.
func (e *Engine) Restore(snapshot *model.Snapshot, careers []types.CareerDocument) error {
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	byID := make(map[string]types.CareerDocument, len(careers))
	for _, career := range careers {
		byID[career.ID] = career
	}

	ordered := make([]types.CareerDocument, len(snapshot.CareerIDs))
	for i, id := range snapshot.CareerIDs {
		career, ok := byID[id]
		if !ok {
			return fmt.Errorf("snapshot references career %q missing from catalog", id)
		}
		ordered[i] = career
	}

	e.state.Store(&corpusState{
		corpus:  snapshot.Corpus(),
		careers: ordered,
		ids:     snapshot.CareerIDs,
	})
	return nil
}
