package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

const defaultCategoryScore = 5.0

// ValidateReport normalizes a loosely shaped judgment object into a
// well-formed report. It never fails: missing categories default to a neutral
// score, out-of-range values are clamped, and the overall score is always
// recomputed as the exact sum of the five categories. Validating an already
// valid report is a no-op, so the transform is idempotent.
func ValidateReport(obj map[string]interface{}) *models.EvaluationReport {
	rawScores, _ := obj["scores"].(map[string]interface{})
	if rawScores == nil {
		rawScores = map[string]interface{}{}
	}

	report := &models.EvaluationReport{
		Scores: models.CategoryScores{
			Relevance:         normalizeScore(rawScores["relevance"]),
			Clarity:           normalizeScore(rawScores["clarity"]),
			TechnicalAccuracy: normalizeScore(rawScores["technical_accuracy"]),
			Structure:         normalizeScore(rawScores["structure"]),
			Completeness:      normalizeScore(rawScores["completeness"]),
		},
		Strengths:       toStringList(obj["strengths"]),
		Weaknesses:      toStringList(obj["weaknesses"]),
		MissingElements: toStringList(obj["missing_elements"]),
	}

	// The provided overall score, if any, is always overridden.
	report.OverallScore = report.Scores.Sum()

	if analysis, ok := obj["detailed_analysis"].(map[string]interface{}); ok {
		report.DetailedAnalysis = models.DetailedAnalysis{
			TechnicalDepth:    toString(analysis["technical_depth"]),
			BusinessViability: toString(analysis["business_viability"]),
			PresentationFlow:  toString(analysis["presentation_flow"]),
		}
	} else {
		suggestions := toStringList(obj["improvement_suggestions"])
		if len(suggestions) == 0 {
			suggestions = []string{"Analysis is brief."}
		}
		report.DetailedAnalysis = models.DetailedAnalysis{
			TechnicalDepth:    fmt.Sprintf("Technical review pending. %s", strings.Join(suggestions, " ")),
			BusinessViability: "Market impact analysis required.",
			PresentationFlow:  "Structure needs further evaluation.",
		}
	}

	report.SummaryEvaluation = toString(obj["summary_evaluation"])
	if report.SummaryEvaluation == "" {
		report.SummaryEvaluation = "Evaluation completed."
	}

	if len(report.Strengths) == 0 {
		report.Strengths = []string{"The submission addresses the stated problem."}
	}
	if len(report.Weaknesses) == 0 {
		report.Weaknesses = []string{"No specific weaknesses were identified by the judge."}
	}
	if report.MissingElements == nil {
		report.MissingElements = []string{}
	}

	return report
}

func normalizeScore(v interface{}) float64 {
	score, ok := toFloat(v)
	if !ok {
		return defaultCategoryScore
	}
	return math.Max(models.MinScore, math.Min(models.MaxScore, score))
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		// Models occasionally quote numbers
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func toStringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	}
	return nil
}
