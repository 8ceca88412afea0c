// Package model persists a fitted corpus to disk so recommendations can
// resume across process runs without refitting. Snapshots are JSON: Go's
// float64 encoding uses the shortest round-trippable decimal form, so a
// saved corpus reloads bit-for-bit and reproduces identical scores.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/vectorizer"
)

// Snapshot is the serialized bundle of a fitted corpus: vocabulary, IDF
// weights, career vector matrix, and the index-aligned career id list.
type Snapshot struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Vectors    [][]float64    `json:"vectors"`
	CareerIDs  []string       `json:"career_ids"`
}

// New builds a Snapshot from a fitted corpus and its career id list. The
// matrix must be index-aligned 1:1 with the ids.
func New(corpus *vectorizer.FittedCorpus, careerIDs []string) (*Snapshot, error) {
	if corpus == nil || corpus.Vocabulary == nil {
		return nil, &vectorizer.NotFittedError{Op: "model.New"}
	}
	if len(corpus.Vectors) != len(careerIDs) {
		return nil, fmt.Errorf("career id list has %d entries but corpus has %d vectors", len(careerIDs), len(corpus.Vectors))
	}
	return &Snapshot{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Vocabulary: corpus.Vocabulary,
		IDF:        corpus.IDF,
		Vectors:    corpus.Vectors,
		CareerIDs:  careerIDs,
	}, nil
}

// Corpus reconstructs the fitted corpus held by the snapshot.
func (s *Snapshot) Corpus() *vectorizer.FittedCorpus {
	return &vectorizer.FittedCorpus{
		Vocabulary: s.Vocabulary,
		IDF:        s.IDF,
		Vectors:    s.Vectors,
	}
}

// Validate checks the structural invariants of a loaded snapshot: the matrix
// is aligned with the id list and every row matches the vocabulary width.
func (s *Snapshot) Validate() error {
	if len(s.Vectors) != len(s.CareerIDs) {
		return fmt.Errorf("snapshot has %d vectors but %d career ids", len(s.Vectors), len(s.CareerIDs))
	}
	if len(s.IDF) != len(s.Vocabulary) {
		return fmt.Errorf("snapshot has %d idf weights but %d vocabulary terms", len(s.IDF), len(s.Vocabulary))
	}
	for i, row := range s.Vectors {
		if len(row) != len(s.IDF) {
			return fmt.Errorf("snapshot vector %d has width %d, want %d", i, len(row), len(s.IDF))
		}
	}
	return nil
}

// Save writes the snapshot as indented JSON, creating parent directories as
// needed.
func Save(path string, s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid snapshot: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// Load reads and validates a snapshot from disk.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot %s is corrupt: %w", path, err)
	}
	return &s, nil
}
