package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchlens/deck-evaluator/internal/models"
)

type fakeExtractor struct {
	content *models.PresentationContent
	err     error
}

func (f *fakeExtractor) ExtractFromFile(filePath string) (*models.PresentationContent, error) {
	return f.content, f.err
}

type fakeSummarizer struct{ summary string }

func (f *fakeSummarizer) GetPresentationSummary(ctx context.Context, content *models.PresentationContent) string {
	return f.summary
}

type fakeSemantic struct{ score float64 }

func (f *fakeSemantic) CalculateRelevanceScore(ctx context.Context, problemStatement, presentationContent string) float64 {
	return f.score
}

type fakeJudge struct{ report *models.EvaluationReport }

func (f *fakeJudge) Evaluate(ctx context.Context, problemStatement, summary, rubricContext string) *models.EvaluationReport {
	return f.report
}

func TestEvaluateFileBlendsRelevance(t *testing.T) {
	judged := ValidateReport(map[string]interface{}{
		"scores": map[string]interface{}{
			"relevance":          float64(9),
			"clarity":            float64(8),
			"technical_accuracy": float64(7),
			"structure":          float64(6),
			"completeness":       float64(5),
		},
	})

	svc := NewEvaluatorService(
		nil, nil,
		&fakeExtractor{content: &models.PresentationContent{SlideCount: 4}},
		&fakeSummarizer{summary: "a deck summary"},
		&fakeSemantic{score: 3.0},
		&fakeJudge{report: judged},
		nil, nil,
	)

	report, summary, err := svc.EvaluateFile(context.Background(), "deck.pptx", "a problem statement")
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "a deck summary", summary)

	// 0.7*9 + 0.3*3 = 7.2, and the overall sum follows the adjustment
	assert.Equal(t, 7.2, report.Scores.Relevance)
	assert.InDelta(t, report.Scores.Sum(), report.OverallScore, 0.0001)

	require.NotNil(t, report.Metadata)
	assert.Equal(t, 4, report.Metadata.SlideCount)
	assert.Equal(t, 3.0, report.Metadata.SemanticRelevanceScore)
	assert.Equal(t, 9.0, report.Metadata.LLMRelevanceScore)
	assert.Equal(t, 7.2, report.Metadata.AdjustedRelevanceScore)
}

func TestEvaluateFileExtractionFailureIsFatal(t *testing.T) {
	svc := NewEvaluatorService(
		nil, nil,
		&fakeExtractor{err: errors.New("corrupt archive")},
		&fakeSummarizer{},
		&fakeSemantic{},
		&fakeJudge{},
		nil, nil,
	)

	report, _, err := svc.EvaluateFile(context.Background(), "deck.pptx", "a problem statement")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "corrupt archive")
}

func TestEvaluateFileNeutralSemanticKeepsJudgment(t *testing.T) {
	judged := ValidateReport(map[string]interface{}{
		"scores": map[string]interface{}{"relevance": float64(5)},
	})

	svc := NewEvaluatorService(
		nil, nil,
		&fakeExtractor{content: &models.PresentationContent{SlideCount: 1}},
		&fakeSummarizer{summary: "s"},
		&fakeSemantic{score: 5.0},
		&fakeJudge{report: judged},
		nil, nil,
	)

	report, _, err := svc.EvaluateFile(context.Background(), "deck.pdf", "a problem statement")
	require.NoError(t, err)

	// Neutral semantic signal leaves a neutral judgment unchanged
	assert.Equal(t, 5.0, report.Scores.Relevance)
}
