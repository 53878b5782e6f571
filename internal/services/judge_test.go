package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator replays a fixed sequence of responses, then repeats the
// last one.
type scriptedGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (g *scriptedGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	idx := g.calls
	if idx >= len(g.responses) {
		idx = len(g.responses) - 1
	}
	g.calls++
	return g.responses[idx], g.errs[idx]
}

func TestJudgeReturnsParsedReport(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{`{"scores": {"relevance": 9, "clarity": 8, "technical_accuracy": 7, "structure": 6, "completeness": 5}, "summary_evaluation": "Sharp pitch."}`},
		errs:      []error{nil},
	}

	judge := NewJudgeService(gen, 3)
	report := judge.Evaluate(context.Background(), scraperProblem, scraperSummary, "")

	require.NotNil(t, report)
	assert.Equal(t, 9.0, report.Scores.Relevance)
	assert.Equal(t, 35.0, report.OverallScore)
	assert.Equal(t, "Sharp pitch.", report.SummaryEvaluation)
	assert.Equal(t, 1, gen.calls)
}

func TestJudgeRetriesThenSucceeds(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{
			"",
			"I am sorry, I cannot help with that.",
			`{"scores": {"relevance": 6}}`,
		},
		errs: []error{errors.New("rate limited"), nil, nil},
	}

	judge := NewJudgeService(gen, 3)
	report := judge.Evaluate(context.Background(), scraperProblem, scraperSummary, "")

	require.NotNil(t, report)
	assert.Equal(t, 6.0, report.Scores.Relevance)
	assert.Equal(t, 3, gen.calls)
}

func TestJudgeFallsBackToHeuristic(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{"no json to be found here"},
		errs:      []error{nil},
	}

	judge := NewJudgeService(gen, 3)
	report := judge.Evaluate(context.Background(), scraperProblem, scraperSummary, "")

	require.NotNil(t, report)
	assert.Equal(t, 3, gen.calls)

	// Exhaustion must resolve to exactly what the heuristic produces
	expected := NewHeuristicScorer().Score(scraperProblem, scraperSummary)
	assert.Equal(t, expected, report)
}

func TestJudgeNeverReturnsNil(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{""},
		errs:      []error{errors.New("model offline")},
	}

	judge := NewJudgeService(gen, 1)
	report := judge.Evaluate(context.Background(), "problem", "summary", "")

	require.NotNil(t, report)
	assert.InDelta(t, report.Scores.Sum(), report.OverallScore, 0.0001)
}
