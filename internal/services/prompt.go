package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEvaluationPrompt creates the hackathon-judge prompt for scoring a
// presentation summary against a problem statement. rubricContext may be empty.
func (pb *PromptBuilder) BuildEvaluationPrompt(problemStatement, presentationSummary, rubricContext string) string {
	contextSection := ""
	if rubricContext != "" {
		contextSection = fmt.Sprintf("\nJUDGING GUIDELINES (reference material):\n%s\n", rubricContext)
	}

	return fmt.Sprintf(`You are a critical HACKATHON JUDGE at a top-tier tech competition. Analyze the following pitch deck/presentation against the problem statement.
Be strict, look for innovation, and demand technical proof. Return ONLY valid JSON.

PROBLEM STATEMENT:
%s

PRESENTATION CONTENT:
%s
%s
EVALUATION CRITERIA (HACKATHON STANDARDS):
1. Relevance (0-10): Problem/Solution Fit. Does it solve a real, significant pain point?
2. Clarity (0-10): Pitch Quality. Is the storytelling compelling and the value prop clear?
3. Technical Accuracy (0-10): Feasibility & Engineering. Is the tech stack appropriate? Is it more than just a wrapper?
4. Structure (0-10): Narrative Flow. Does it follow: Problem -> Solution -> Tech -> Business -> Ask?
5. Completeness (0-10): MVP Status. Is there a demo/prototype? Is the roadmap realistic?

Return ONLY this JSON structure with no additional text:
{
  "scores": {
    "relevance": <0-10>,
    "clarity": <0-10>,
    "technical_accuracy": <0-10>,
    "structure": <0-10>,
    "completeness": <0-10>
  },
  "overall_score": <sum of above>,
  "strengths": [<3 specific, detailed compliments on Innovation/Tech/Impact (at least 20 words each). Cite specific slides/features.>],
  "weaknesses": [<3 specific, critical flaws in Feasibility/Business/MVP (at least 20 words each). Be tough.>],
  "improvement_suggestions": [<3 actionable, expert advice on how to win the hackathon (at least 20 words each). Focus on features, pitch delivery, or biz model.>],
  "missing_elements": [<list of specific missing hackathon essentials (e.g., "Demo Video", "Revenue Model", "competitor differentiator")>],
  "summary_evaluation": "<Comprehensive 3-5 sentence judge's verdict. Would you fund this? Is it hackathon-winning material? be direct.>"
}`,
		problemStatement, presentationSummary, contextSection)
}

// BuildStructurePrompt creates the prompt for regenerating a deck structure
// from the evaluation's critique.
func (pb *PromptBuilder) BuildStructurePrompt(summary, problemStatement string, analysis models.Critique, customInstructions string) string {
	if customInstructions == "" {
		customInstructions = "Improve the flow, clarity, and impact."
	}

	weaknesses, _ := json.MarshalIndent(analysis.Weaknesses, "", "  ")
	missing, _ := json.MarshalIndent(analysis.MissingElements, "", "  ")
	detailed, _ := json.MarshalIndent(analysis.DetailedAnalysis, "", "  ")

	return fmt.Sprintf(`Act as a professional pitch deck designer and content strategist.
Your task is to RECONSTRUCT and IMPROVE a pitch deck based on the following project summary and judge's critique.

CONTEXT:
Project Summary: %s
Problem Statement to Address: %s

CRITIQUE (Fix these issues):
Weaknesses: %s
Missing Elements: %s
Detailed Analysis: %s

USER INSTRUCTIONS:
%s

TASK:
Generate a JSON structure for a complete, professional pitch deck (10-12 slides).
Each slide must have a 'title', 'layout', and 'content'.

LAYOUT OPTIONS:
- "Title Slide" (Title + Subtitle)
- "Title and Content" (Title + Bullet points)
- "Two Content" (Title + Left Bullets + Right Bullets)
- "Section Header" (Title only)

OUTPUT FORMAT (JSON ONLY, NO MARKDOWN):
{
    "slides": [
        {
            "title": "Slide Title",
            "layout": "Title Slide",
            "content": {
                "title": "Main Title",
                "subtitle": "Subtitle/Tagline"
            }
        },
        {
            "title": "The Problem",
            "layout": "Title and Content",
            "content": {
                "bullets": [
                    "Point 1...",
                    "Point 2..."
                ]
            }
        }
    ]
}`,
		summary, problemStatement, string(weaknesses), string(missing), string(detailed), customInstructions)
}

// BuildRefinePrompt creates the prompt for applying one chat instruction to an
// existing structure. The current structure is embedded verbatim and the edit
// must be minimal and format-preserving.
func (pb *PromptBuilder) BuildRefinePrompt(currentStructure *models.PresentationStructure, userInstruction, presentationSummary string) string {
	structureJSON, _ := json.MarshalIndent(currentStructure, "", "  ")

	return fmt.Sprintf(`Act as a professional pitch deck designer.
The user wants to modify an existing presentation structure.

CONTEXT:
Project Summary: %s
Current Structure (JSON):
%s

USER INSTRUCTION:
"%s"

TASK:
Modify the JSON structure to address the user's request.
- If they ask to add a slide, insert it in the appropriate position.
- If they ask to change text, update the content.
- Keep every slide the user did not mention unchanged.
- Maintain the JSON format exactly.

OUTPUT FORMAT (JSON ONLY, NO MARKDOWN):
{
    "slides": [...]
}`,
		presentationSummary, string(structureJSON), userInstruction)
}

// BuildCondensePrompt creates the prompt for shrinking an over-long
// concatenated deck text into a bounded summary.
func (pb *PromptBuilder) BuildCondensePrompt(text string, maxChars int) string {
	return fmt.Sprintf(`Condense the following presentation content into a faithful summary of at most %d characters.
Keep slide-by-slide coverage: every major claim, technology, and number must survive. Do not add commentary.

PRESENTATION CONTENT:
%s`, maxChars, text)
}

// FormatRubricContext flattens retrieved judging-guideline snippets for prompt
// injection.
func FormatRubricContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Context %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
