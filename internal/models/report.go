package models

// ScoreCategories is the fixed set of judged categories, in report order.
var ScoreCategories = []string{"relevance", "clarity", "technical_accuracy", "structure", "completeness"}

const (
	MinScore = 0.0
	MaxScore = 10.0
)

type CategoryScores struct {
	Relevance         float64 `json:"relevance"`
	Clarity           float64 `json:"clarity"`
	TechnicalAccuracy float64 `json:"technical_accuracy"`
	Structure         float64 `json:"structure"`
	Completeness      float64 `json:"completeness"`
}

// Sum returns the overall score over all five categories.
func (s CategoryScores) Sum() float64 {
	return s.Relevance + s.Clarity + s.TechnicalAccuracy + s.Structure + s.Completeness
}

type DetailedAnalysis struct {
	TechnicalDepth    string `json:"technical_depth"`
	BusinessViability string `json:"business_viability"`
	PresentationFlow  string `json:"presentation_flow"`
}

type ReportMetadata struct {
	SlideCount             int     `json:"slide_count"`
	SemanticRelevanceScore float64 `json:"semantic_relevance_score"`
	LLMRelevanceScore      float64 `json:"llm_relevance_score"`
	AdjustedRelevanceScore float64 `json:"adjusted_relevance_score"`
}

type EvaluationReport struct {
	Scores            CategoryScores   `json:"scores"`
	OverallScore      float64          `json:"overall_score"`
	Strengths         []string         `json:"strengths"`
	Weaknesses        []string         `json:"weaknesses"`
	DetailedAnalysis  DetailedAnalysis `json:"detailed_analysis"`
	MissingElements   []string         `json:"missing_elements"`
	SummaryEvaluation string           `json:"summary_evaluation"`
	Metadata          *ReportMetadata  `json:"metadata,omitempty"`
}

// Critique is the slice of a prior report consumed by the reconstruction loop.
type Critique struct {
	Weaknesses       []string         `json:"weaknesses"`
	MissingElements  []string         `json:"missing_elements"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
}

// CritiqueOf extracts the regeneration inputs from a completed report.
func CritiqueOf(report *EvaluationReport) Critique {
	return Critique{
		Weaknesses:       report.Weaknesses,
		MissingElements:  report.MissingElements,
		DetailedAnalysis: report.DetailedAnalysis,
	}
}
