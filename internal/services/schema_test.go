package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchlens/deck-evaluator/internal/models"
)

func TestValidateReportDefaults(t *testing.T) {
	report := ValidateReport(map[string]interface{}{})

	assert.Equal(t, 5.0, report.Scores.Relevance)
	assert.Equal(t, 5.0, report.Scores.Clarity)
	assert.Equal(t, 5.0, report.Scores.TechnicalAccuracy)
	assert.Equal(t, 5.0, report.Scores.Structure)
	assert.Equal(t, 5.0, report.Scores.Completeness)
	assert.Equal(t, 25.0, report.OverallScore)

	assert.NotEmpty(t, report.Strengths)
	assert.NotEmpty(t, report.Weaknesses)
	assert.NotNil(t, report.MissingElements)
	assert.Empty(t, report.MissingElements)
	assert.Equal(t, "Evaluation completed.", report.SummaryEvaluation)
}

func TestValidateReportClampsScores(t *testing.T) {
	report := ValidateReport(map[string]interface{}{
		"scores": map[string]interface{}{
			"relevance":          float64(15),
			"clarity":            float64(-3),
			"technical_accuracy": "7.5", // quoted numbers happen
			"structure":          "not a number",
			"completeness":       float64(10),
		},
	})

	assert.Equal(t, 10.0, report.Scores.Relevance)
	assert.Equal(t, 0.0, report.Scores.Clarity)
	assert.Equal(t, 7.5, report.Scores.TechnicalAccuracy)
	assert.Equal(t, 5.0, report.Scores.Structure)
	assert.Equal(t, 10.0, report.Scores.Completeness)
}

func TestValidateReportOverridesOverallScore(t *testing.T) {
	report := ValidateReport(map[string]interface{}{
		"scores": map[string]interface{}{
			"relevance":          float64(8),
			"clarity":            float64(7),
			"technical_accuracy": float64(6),
			"structure":          float64(5),
			"completeness":       float64(4),
		},
		"overall_score": float64(99),
	})

	assert.InDelta(t, 30.0, report.OverallScore, 0.0001)
	assert.InDelta(t, report.Scores.Sum(), report.OverallScore, 0.0001)
}

func TestValidateReportSynthesizesAnalysis(t *testing.T) {
	report := ValidateReport(map[string]interface{}{
		"improvement_suggestions": []interface{}{"Add a demo video.", "Show the revenue model."},
	})

	assert.True(t, strings.HasPrefix(report.DetailedAnalysis.TechnicalDepth, "Technical review pending."))
	assert.Contains(t, report.DetailedAnalysis.TechnicalDepth, "Add a demo video.")
	assert.Equal(t, "Market impact analysis required.", report.DetailedAnalysis.BusinessViability)
	assert.Equal(t, "Structure needs further evaluation.", report.DetailedAnalysis.PresentationFlow)
}

func TestValidateReportKeepsProvidedAnalysis(t *testing.T) {
	report := ValidateReport(map[string]interface{}{
		"detailed_analysis": map[string]interface{}{
			"technical_depth":    "Deep.",
			"business_viability": "Viable.",
			"presentation_flow":  "Flows.",
		},
	})

	assert.Equal(t, "Deep.", report.DetailedAnalysis.TechnicalDepth)
	assert.Equal(t, "Viable.", report.DetailedAnalysis.BusinessViability)
	assert.Equal(t, "Flows.", report.DetailedAnalysis.PresentationFlow)
}

func TestValidateReportIdempotent(t *testing.T) {
	first := ValidateReport(map[string]interface{}{
		"scores": map[string]interface{}{
			"relevance":          float64(9),
			"clarity":            float64(8),
			"technical_accuracy": float64(7),
			"structure":          float64(6),
			"completeness":       float64(5),
		},
		"strengths":          []interface{}{"Strong tech."},
		"weaknesses":         []interface{}{"Weak biz."},
		"missing_elements":   []interface{}{"Demo Video"},
		"summary_evaluation": "Good enough.",
		"detailed_analysis": map[string]interface{}{
			"technical_depth":    "Deep.",
			"business_viability": "Viable.",
			"presentation_flow":  "Flows.",
		},
	})

	// Feed the validated report back through as a decoded object
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &roundTripped))

	second := ValidateReport(roundTripped)
	assert.Equal(t, first, second)
}

func TestValidateReportScoresAlwaysInRange(t *testing.T) {
	inputs := []interface{}{float64(-100), float64(100), "abc", nil, []interface{}{1}}
	for _, v := range inputs {
		report := ValidateReport(map[string]interface{}{
			"scores": map[string]interface{}{"relevance": v},
		})
		if report.Scores.Relevance < models.MinScore || report.Scores.Relevance > models.MaxScore {
			t.Fatalf("relevance out of range for input %v: %f", v, report.Scores.Relevance)
		}
	}
}
