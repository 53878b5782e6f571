package services

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

// Keyword signals for the deterministic judge. Fixed lists: scoring must be
// reproducible across runs with no model call involved.
var (
	techKeywords = []string{
		"python", "javascript", "react", "node", "aws", "firebase", "docker", "kubernetes",
		"api", "database", "sql", "nosql", "mongodb", "ai", "ml", "llm", "blockchain",
		"smart contract", "flutter", "swift", "tensorflow", "pytorch", "backend", "frontend",
	}

	bizKeywords = []string{
		"market", "revenue", "business model", "subscription", "b2b", "b2c", "saas",
		"competitor", "user acquisition", "growth", "scale", "monetization", "cost",
	}

	mvpKeywords = []string{
		"demo", "prototype", "mvp", "live", "screenshot", "walkthrough", "architecture",
		"flowchart", "github", "repo", "implementation",
	}

	structuralMarkers = []string{"problem", "solution", "tech", "demo", "business", "team", "ask"}

	stopWords = map[string]bool{"the": true, "a": true, "an": true, "to": true, "of": true}

	wordPattern = regexp.MustCompile(`\w+`)
)

// HeuristicScorer produces a fully valid evaluation report from keyword and
// token-overlap signals alone. It backs the retry controller when every
// generation attempt fails, so it must never error and never call out.
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

func (h *HeuristicScorer) Score(problemStatement, summary string) *models.EvaluationReport {
	log.Println("⚙️  Running heuristic fallback evaluation...")

	summaryLower := strings.ToLower(summary)

	// Signal extraction
	var detectedTech []string
	for _, kw := range techKeywords {
		if strings.Contains(summaryLower, kw) {
			detectedTech = append(detectedTech, kw)
		}
	}
	hasTechDepth := len(detectedTech) >= 3

	hasBizPlan := containsAny(summaryLower, bizKeywords)
	hasMVP := containsAny(summaryLower, mvpKeywords)

	// Relevance: token overlap between problem statement and summary
	problemWords := tokenSet(problemStatement)
	summaryWords := tokenSet(summary)
	overlap := 0
	for w := range problemWords {
		if summaryWords[w] {
			overlap++
		}
	}
	relevanceScore := 4.0
	if len(problemWords) > 0 {
		ratio := float64(overlap) / float64(len(problemWords))
		relevanceScore = math.Min(9.5, math.Max(4.0, ratio*10*1.5))
	}

	// Technical accuracy, weighted by tech stack detection
	techScore := 5.0
	if hasTechDepth {
		techScore = 8.5
	}
	if strings.Contains(summaryLower, "wrapper") || strings.Contains(summaryLower, "simple") {
		techScore -= 1.0
	}

	// Completeness: no MVP evidence is an instant penalty
	completenessScore := 4.0
	if hasMVP {
		completenessScore = 8.0
	}

	// Structure: pitch flow markers
	structureCount := 0
	for _, w := range structuralMarkers {
		if strings.Contains(summaryLower, w) {
			structureCount++
		}
	}
	structureScore := math.Min(9.0, 4.0+float64(structureCount))

	// Clarity: fixed baseline, no signal without a generative judgment
	clarityScore := 7.5

	scores := models.CategoryScores{
		Relevance:         round1(relevanceScore),
		Clarity:           round1(clarityScore),
		TechnicalAccuracy: round1(techScore),
		Structure:         round1(structureScore),
		Completeness:      round1(completenessScore),
	}
	overallScore := scores.Sum()

	return &models.EvaluationReport{
		Scores:            scores,
		OverallScore:      overallScore,
		Strengths:         h.buildStrengths(hasTechDepth, hasBizPlan, detectedTech, scores.Relevance),
		Weaknesses:        h.buildWeaknesses(hasTechDepth, hasBizPlan, hasMVP),
		DetailedAnalysis:  h.buildAnalysis(hasTechDepth, hasBizPlan, detectedTech, scores.Structure, scores.Clarity),
		MissingElements:   []string{"Live Demo Link", "System Architecture Diagram", "Go-to-Market Strategy"},
		SummaryEvaluation: h.buildSummary(overallScore, hasTechDepth, hasMVP),
	}
}

func (h *HeuristicScorer) buildStrengths(hasTechDepth, hasBizPlan bool, detectedTech []string, relevance float64) []string {
	var strengths []string

	if hasTechDepth {
		top := detectedTech
		if len(top) > 3 {
			top = top[:3]
		}
		strengths = append(strengths, fmt.Sprintf(
			"Impressive technical depth detected (%s). The engineering effort appears strictly robust and goes beyond a simple UI wrapper.",
			strings.Join(top, ", ")))
	} else {
		strengths = append(strengths,
			"The project targets a clear problem space, and the initial concept shows potential for a viable hackathon entry if technical details are fleshed out.")
	}

	if hasBizPlan {
		strengths = append(strengths,
			"Strong business viability signals. You've clearly thought about market fit and monetization, which sets you apart from pure engineering projects.")
	} else {
		strengths = append(strengths,
			"The narrative follows a logical problem-solution cadence, making the core value proposition easy for judges to understand quickly.")
	}

	if relevance > 7 {
		strengths = append(strengths,
			"Direct hit on the problem statement. The solution aligns perfectly with the competition track and addresses a significant pain point.")
	} else {
		strengths = append(strengths,
			"The slide deck is visually structured to guide the audience, ensuring that the key 'Ask' or conclusion is not lost in the details.")
	}

	return strengths
}

func (h *HeuristicScorer) buildWeaknesses(hasTechDepth, hasBizPlan, hasMVP bool) []string {
	var weaknesses []string

	if !hasTechDepth {
		weaknesses = append(weaknesses,
			"CRITICAL: Lack of deep technical details. Judges need to see architecture diagrams, API specs, or code snippets, not just high-level concepts. What is the stack?")
	} else {
		weaknesses = append(weaknesses,
			"The connection between the complex tech stack and the user value proposition could be sharper. Don't just list tools; explain *why* they were chosen.")
	}

	if !hasMVP {
		weaknesses = append(weaknesses,
			"MAJOR RED FLAG: No clear evidence of a functional MVP or Demo. Hackathons are about *building*, not just pitching ideas. Where is the prototype?")
	} else {
		weaknesses = append(weaknesses,
			"The current MVP feature set seems ambitious. Ensure you can actually demo the core 'Happy Path' live without smoking mirrors.")
	}

	if !hasBizPlan {
		weaknesses = append(weaknesses,
			"Missing commercial viability. Even for non-profits, you need a sustainability model. Who pays? How do you scale? The 'Business' slide seems missing.")
	} else {
		weaknesses = append(weaknesses,
			"The competitive analysis feels light. You need to explicitly state why you are 10x better than existing solution X or Y.")
	}

	return weaknesses
}

func (h *HeuristicScorer) buildAnalysis(hasTechDepth, hasBizPlan bool, detectedTech []string, structureScore, clarityScore float64) models.DetailedAnalysis {
	techPhrase := "lacks sufficient technical specificity"
	if hasTechDepth {
		techPhrase = "demonstrates a strong engineering foundation"
	}
	stackPhrase := "No clear tech stack was identified."
	if len(detectedTech) > 0 {
		stackPhrase = fmt.Sprintf("The stack includes %s.", strings.Join(detectedTech, ", "))
	}

	bizPhrase := "Commercial viability is unclear"
	bizVerb := "fails to address"
	if hasBizPlan {
		bizPhrase = "A clear business model was detected"
		bizVerb = "addresses"
	}

	flowAdverb := "partially"
	if structureScore > 7 {
		flowAdverb = "successfully"
	}

	return models.DetailedAnalysis{
		TechnicalDepth: fmt.Sprintf(
			"The proposed solution %s. %s Architecture validation required.",
			techPhrase, stackPhrase),
		BusinessViability: fmt.Sprintf(
			"%s. The presentation %s market fit and revenue streams adequately for a venture-backed track.",
			bizPhrase, bizVerb),
		PresentationFlow: fmt.Sprintf(
			"The narrative structure scores %.1f/10. It %s follows standard pitch deck conventions (Problem->Solution->Tech->Biz). Visual clarity baseline estimated at %.1f/10.",
			structureScore, flowAdverb, clarityScore),
	}
}

func (h *HeuristicScorer) buildSummary(overallScore float64, hasTechDepth, hasMVP bool) string {
	verdict := "NEEDS WORK"
	if overallScore > 40 {
		verdict = "FUNDABLE"
	} else if overallScore > 30 {
		verdict = "PROMISING"
	}

	potential := "has a good concept but lacks execution proof"
	if hasTechDepth && hasMVP {
		potential = "has strong winning potential"
	}

	standout := "You need to prove this is more than just a slide deck."
	if hasTechDepth {
		standout = "The technical implementation is the standout feature."
	}

	focus := "Business Case"
	if !hasMVP {
		focus = "Demo"
	}

	return fmt.Sprintf(
		"JUDGE'S VERDICT: %s (Score: %.1f/50). This entry %s. %s Focus entirely on polishing the %s for the final pitch.",
		verdict, overallScore, potential, standout, focus)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func tokenSet(text string) map[string]bool {
	words := map[string]bool{}
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[w] {
			words[w] = true
		}
	}
	return words
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
