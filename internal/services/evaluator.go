package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"pitchlens/deck-evaluator/internal/models"
	"pitchlens/deck-evaluator/internal/repositories"
)

type EvaluatorService interface {
	// EvaluatePresentation runs the full pipeline for a queued job and
	// persists the outcome.
	EvaluatePresentation(ctx context.Context, evalID uuid.UUID) error

	// EvaluateFile runs the pipeline against a deck on disk and returns the
	// report together with the concatenated summary it was judged on.
	EvaluateFile(ctx context.Context, filePath, problemStatement string) (*models.EvaluationReport, string, error)
}

type evaluatorService struct {
	evalRepo   repositories.EvaluationRepository
	docRepo    repositories.DocumentRepository
	extractor  DeckExtractor
	summarizer SummarizerService
	semantic   SemanticScorer
	judge      JudgeService
	gemini     GeminiService
	qdrant     QdrantService
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	docRepo repositories.DocumentRepository,
	extractor DeckExtractor,
	summarizer SummarizerService,
	semantic SemanticScorer,
	judge JudgeService,
	gemini GeminiService,
	qdrant QdrantService,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:   evalRepo,
		docRepo:    docRepo,
		extractor:  extractor,
		summarizer: summarizer,
		semantic:   semantic,
		judge:      judge,
		gemini:     gemini,
		qdrant:     qdrant,
	}
}

func (e *evaluatorService) EvaluatePresentation(ctx context.Context, evalID uuid.UUID) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting evaluation for job ID: %s\n", evalID)

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	doc, err := e.docRepo.FindByID(evaluation.DocumentID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("presentation document not found: %v", err))
		return fmt.Errorf("failed to get document: %w", err)
	}

	report, summary, err := e.EvaluateFile(ctx, doc.FilePath, evaluation.ProblemStatement)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("evaluation pipeline failed: %w", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("failed to encode report: %v", err))
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := e.evalRepo.UpdateResult(evalID, string(reportJSON), summary); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Evaluation completed successfully for job ID: %s (score %.1f/50)\n", evalID, report.OverallScore)
	return nil
}

func (e *evaluatorService) EvaluateFile(ctx context.Context, filePath, problemStatement string) (*models.EvaluationReport, string, error) {
	// Step 1: Extract slides. Unreadable input is fatal, retrying cannot fix it.
	log.Println("📄 Step 1/4: Extracting presentation content...")
	content, err := e.extractor.ExtractFromFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract presentation content: %w", err)
	}
	log.Printf("✓ Extracted %d slides\n", content.SlideCount)

	// Step 2: Summarize into the single judging representation
	log.Println("📝 Step 2/4: Summarizing presentation content...")
	summary := e.summarizer.GetPresentationSummary(ctx, content)
	log.Printf("✓ Generated summary (%d characters)\n", len(summary))

	// Step 3: Semantic relevance; the scorer degrades to neutral internally
	log.Println("🔍 Step 3/4: Calculating semantic relevance...")
	semanticScore := e.semantic.CalculateRelevanceScore(ctx, problemStatement, summary)
	log.Printf("✓ Semantic relevance: %.2f/10\n", semanticScore)

	// Step 4: Judgment, with retries and heuristic fallback inside
	log.Println("🤖 Step 4/4: Running LLM judgment...")
	rubricContext := e.retrieveRubricContext(ctx, summary)
	report := e.judge.Evaluate(ctx, problemStatement, summary, rubricContext)
	log.Println("✓ Judgment completed")

	// Blend the judged relevance with the semantic signal and recompute
	originalRelevance := report.Scores.Relevance
	adjustedRelevance := CombineRelevance(semanticScore, originalRelevance)
	report.Scores.Relevance = adjustedRelevance
	report.OverallScore = report.Scores.Sum()

	report.Metadata = &models.ReportMetadata{
		SlideCount:             content.SlideCount,
		SemanticRelevanceScore: semanticScore,
		LLMRelevanceScore:      originalRelevance,
		AdjustedRelevanceScore: adjustedRelevance,
	}

	log.Printf("🏁 Evaluation complete! Overall score: %.1f/50\n", report.OverallScore)
	return report, summary, nil
}

// retrieveRubricContext pulls judging-guideline snippets similar to the deck.
// Retrieval is best effort: any failure yields an empty context.
func (e *evaluatorService) retrieveRubricContext(ctx context.Context, summary string) string {
	if e.qdrant == nil {
		return ""
	}

	embedding, err := e.gemini.GenerateEmbedding(ctx, summary)
	if err != nil {
		log.Printf("⚠️  Warning: failed to embed summary for rubric lookup: %v\n", err)
		return ""
	}

	var allResults []SearchResult
	for _, docType := range []string{"judging_rubric", "pitch_guide"} {
		results, err := e.qdrant.SearchSimilar(ctx, embedding, docType, 3)
		if err != nil {
			log.Printf("⚠️  Failed to search for %s: %v\n", docType, err)
			continue
		}
		allResults = append(allResults, results...)
	}

	return FormatRubricContext(allResults)
}
