package services

import (
	"context"
	"log"

	"pitchlens/deck-evaluator/internal/models"
)

// TextGenerator is the boundary to a generative text source. It may fail, time
// out, or return an error-sentinel string instead of usable output; callers
// treat all of those as attempt failures.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type JudgeService interface {
	// Evaluate produces a structured judgment of the summary against the
	// problem statement. It never fails: after maxAttempts unusable
	// generations it falls back to the deterministic heuristic scorer.
	Evaluate(ctx context.Context, problemStatement, summary, rubricContext string) *models.EvaluationReport
}

type judgeService struct {
	generator     TextGenerator
	heuristic     *HeuristicScorer
	promptBuilder *PromptBuilder
	maxAttempts   int
}

func NewJudgeService(generator TextGenerator, maxAttempts int) JudgeService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &judgeService{
		generator:     generator,
		heuristic:     NewHeuristicScorer(),
		promptBuilder: NewPromptBuilder(),
		maxAttempts:   maxAttempts,
	}
}

// attemptOutcome is the result of one generate-parse-validate cycle.
type attemptOutcome struct {
	report *models.EvaluationReport
	reason string
}

func (j *judgeService) Evaluate(ctx context.Context, problemStatement, summary, rubricContext string) *models.EvaluationReport {
	prompt := j.promptBuilder.BuildEvaluationPrompt(problemStatement, summary, rubricContext)

	for attempt := 1; attempt <= j.maxAttempts; attempt++ {
		log.Printf("🤖 Generating judgment (attempt %d/%d)...\n", attempt, j.maxAttempts)

		outcome := j.attempt(ctx, prompt)
		if outcome.report != nil {
			log.Println("✅ Judgment generated successfully")
			return outcome.report
		}

		log.Printf("⚠️  Attempt %d failed: %s\n", attempt, outcome.reason)
	}

	// Attempts are independent by design: no backoff, no prompt feedback.
	// Exhaustion resolves via the heuristic scorer, never as an error.
	log.Printf("⚠️  All %d judgment attempts failed. Falling back to heuristic scoring.\n", j.maxAttempts)
	return j.heuristic.Score(problemStatement, summary)
}

func (j *judgeService) attempt(ctx context.Context, prompt string) attemptOutcome {
	response, err := j.generator.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return attemptOutcome{reason: "generation failed: " + err.Error()}
	}

	obj, ok := ExtractJSONObject(response)
	if !ok {
		return attemptOutcome{reason: "no JSON object found in response"}
	}

	return attemptOutcome{report: ValidateReport(obj)}
}
