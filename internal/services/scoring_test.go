package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineRelevanceEndpoints(t *testing.T) {
	assert.Equal(t, 10.0, CombineRelevance(10, 10))
	assert.Equal(t, 0.0, CombineRelevance(0, 0))
}

func TestCombineRelevanceWeighting(t *testing.T) {
	// 0.7*9 + 0.3*3 = 7.2, judgment dominates
	assert.Equal(t, 7.2, CombineRelevance(3, 9))
	// Flipped inputs weight the other way
	assert.Equal(t, 4.8, CombineRelevance(9, 3))
}

func TestCombineRelevanceRoundsToOneDecimal(t *testing.T) {
	got := CombineRelevance(3.33, 7.77)
	assert.Equal(t, 6.4, got) // 0.7*7.77 + 0.3*3.33 = 6.438
}

func TestCombineRelevanceMonotonic(t *testing.T) {
	base := CombineRelevance(5, 5)
	if CombineRelevance(6, 5) < base {
		t.Fatalf("raising similarity lowered the blend")
	}
	if CombineRelevance(5, 6) < base {
		t.Fatalf("raising judgment lowered the blend")
	}
}
