package services

// Relevance blend weights. The generative judgment captures problem/solution
// fit; the embedding similarity is a cheap sanity check against drift.
const (
	judgmentRelevanceWeight = 0.7
	semanticRelevanceWeight = 0.3
)

// CombineRelevance blends the judgment's relevance score with the
// embedding-based similarity score into one adjusted figure, rounded to one
// decimal. Monotonically non-decreasing in both arguments.
func CombineRelevance(similarityScore, judgmentRelevance float64) float64 {
	return round1(judgmentRelevanceWeight*judgmentRelevance + semanticRelevanceWeight*similarityScore)
}
