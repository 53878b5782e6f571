package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mapEmbedder returns a canned vector per input text.
type mapEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (m *mapEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.vectors[text], nil
}

func TestSemanticScoreIdenticalVectors(t *testing.T) {
	scorer := NewSemanticScorer(&mapEmbedder{vectors: map[string][]float32{
		"problem": {0.5, 0.5, 0},
		"deck":    {0.5, 0.5, 0},
	}})

	score := scorer.CalculateRelevanceScore(context.Background(), "problem", "deck")
	assert.InDelta(t, 10.0, score, 0.001)
}

func TestSemanticScoreOrthogonalVectors(t *testing.T) {
	scorer := NewSemanticScorer(&mapEmbedder{vectors: map[string][]float32{
		"problem": {1, 0},
		"deck":    {0, 1},
	}})

	score := scorer.CalculateRelevanceScore(context.Background(), "problem", "deck")
	assert.Equal(t, 0.0, score)
}

func TestSemanticScoreNeutralOnError(t *testing.T) {
	scorer := NewSemanticScorer(&mapEmbedder{err: errors.New("embedding service down")})

	score := scorer.CalculateRelevanceScore(context.Background(), "problem", "deck")
	assert.Equal(t, 5.0, score)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	if got := cosineSimilarity([]float32{1, 2}, []float32{1}); got != 0 {
		t.Fatalf("length mismatch should score 0, got %f", got)
	}
	if got := cosineSimilarity(nil, nil); got != 0 {
		t.Fatalf("empty vectors should score 0, got %f", got)
	}
	if got := cosineSimilarity([]float32{0, 0}, []float32{1, 1}); got != 0 {
		t.Fatalf("zero-norm vector should score 0, got %f", got)
	}
}
