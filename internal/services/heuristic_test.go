package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pitchlens/deck-evaluator/internal/models"
)

const scraperProblem = "Build a tool that collects product prices from online stores automatically"

const scraperSummary = `Slide 1 - PriceWatch: We collect product prices from online stores automatically.
Slide 2 - Tech: Built with python, a node backend, an api layer and a mongodb database.
Slide 3 - Demo: Live demo available, github repo linked, full walkthrough recorded.
Slide 4 - Solution: Our solution addresses the problem for every team.`

func TestHeuristicScoreDeterministic(t *testing.T) {
	scorer := NewHeuristicScorer()

	first := scorer.Score(scraperProblem, scraperSummary)
	second := scorer.Score(scraperProblem, scraperSummary)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different reports:\n%+v\n%+v", first, second)
	}
}

func TestHeuristicScoreSignalDriven(t *testing.T) {
	report := NewHeuristicScorer().Score(scraperProblem, scraperSummary)

	// Four tech keywords and clear MVP evidence, no business language
	assert.Equal(t, 8.5, report.Scores.TechnicalAccuracy)
	assert.Equal(t, 8.0, report.Scores.Completeness)
	assert.Equal(t, 7.5, report.Scores.Clarity)

	assert.InDelta(t, report.Scores.Sum(), report.OverallScore, 0.0001)

	foundBizGap := false
	for _, w := range report.Weaknesses {
		if strings.Contains(w, "Missing commercial viability") {
			foundBizGap = true
		}
	}
	assert.True(t, foundBizGap, "expected a commercial viability weakness: %v", report.Weaknesses)
}

func TestHeuristicScoreWrapperPenalty(t *testing.T) {
	base := NewHeuristicScorer().Score(scraperProblem, scraperSummary)
	penalized := NewHeuristicScorer().Score(scraperProblem, scraperSummary+"\nSlide 5: It is just a simple wrapper.")

	assert.Equal(t, base.Scores.TechnicalAccuracy-1.0, penalized.Scores.TechnicalAccuracy)
}

func TestHeuristicRelevanceBounds(t *testing.T) {
	scorer := NewHeuristicScorer()

	// No overlap at all floors at 4.0
	low := scorer.Score("quantum cryptography hardware", "We sell artisanal coffee to students.")
	assert.Equal(t, 4.0, low.Scores.Relevance)

	// Full overlap caps at 9.5
	high := scorer.Score(scraperProblem, scraperProblem)
	assert.Equal(t, 9.5, high.Scores.Relevance)
}

func TestHeuristicScoresAlwaysInRange(t *testing.T) {
	summaries := []string{"", scraperSummary, "wrapper simple", strings.Repeat("problem solution tech demo business team ask ", 10)}
	scorer := NewHeuristicScorer()

	for _, summary := range summaries {
		report := scorer.Score(scraperProblem, summary)
		for _, score := range []float64{
			report.Scores.Relevance,
			report.Scores.Clarity,
			report.Scores.TechnicalAccuracy,
			report.Scores.Structure,
			report.Scores.Completeness,
		} {
			if score < models.MinScore || score > models.MaxScore {
				t.Fatalf("score out of range for summary %q: %f", summary, score)
			}
		}
		assert.Len(t, report.Strengths, 3)
		assert.Len(t, report.Weaknesses, 3)
		assert.NotEmpty(t, report.SummaryEvaluation)
	}
}

func TestHeuristicVerdictThresholds(t *testing.T) {
	h := NewHeuristicScorer()

	assert.Contains(t, h.buildSummary(45, true, true), "FUNDABLE")
	assert.Contains(t, h.buildSummary(35, false, true), "PROMISING")
	assert.Contains(t, h.buildSummary(25, false, false), "NEEDS WORK")

	// Boundaries are strict
	assert.Contains(t, h.buildSummary(40, false, false), "PROMISING")
	assert.Contains(t, h.buildSummary(30, false, false), "NEEDS WORK")
}

func TestHeuristicFixedMissingElements(t *testing.T) {
	report := NewHeuristicScorer().Score(scraperProblem, scraperSummary)
	assert.Equal(t, []string{"Live Demo Link", "System Architecture Diagram", "Go-to-Market Strategy"}, report.MissingElements)
}
