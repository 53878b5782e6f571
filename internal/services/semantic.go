package services

import (
	"context"
	"log"
	"math"
)

// Embedder is the boundary to a text-to-vector generator.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type SemanticScorer interface {
	// CalculateRelevanceScore returns an embedding-based relevance estimate in
	// [0,10]. It never fails: any collaborator error yields the neutral 5.0.
	CalculateRelevanceScore(ctx context.Context, problemStatement, presentationContent string) float64
}

type semanticScorer struct {
	embedder Embedder
}

func NewSemanticScorer(embedder Embedder) SemanticScorer {
	return &semanticScorer{embedder: embedder}
}

const neutralRelevanceScore = 5.0

func (s *semanticScorer) CalculateRelevanceScore(ctx context.Context, problemStatement, presentationContent string) float64 {
	problemEmbedding, err := s.embedder.GenerateEmbedding(ctx, problemStatement)
	if err != nil {
		log.Printf("⚠️  Failed to embed problem statement: %v. Using neutral relevance.\n", err)
		return neutralRelevanceScore
	}

	contentEmbedding, err := s.embedder.GenerateEmbedding(ctx, presentationContent)
	if err != nil {
		log.Printf("⚠️  Failed to embed presentation content: %v. Using neutral relevance.\n", err)
		return neutralRelevanceScore
	}

	similarity := cosineSimilarity(problemEmbedding, contentEmbedding)

	// Map cosine [0,1] onto [0,10]; negative similarity floors at 0
	score := math.Max(0, math.Min(10, similarity*10))
	score = math.Round(score*100) / 100

	log.Printf("🔍 Semantic relevance score: %.2f/10\n", score)
	return score
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
