package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pitchlens/deck-evaluator/internal/models"
	"pitchlens/deck-evaluator/internal/repositories"
	"pitchlens/deck-evaluator/internal/services"
)

const minProblemStatementLen = 10

type EvaluationHandler struct {
	evalRepo repositories.EvaluationRepository
	docRepo  repositories.DocumentRepository
	worker   services.Worker
}

func NewEvaluationHandler(
	evalRepo repositories.EvaluationRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *EvaluationHandler {
	return &EvaluationHandler{
		evalRepo: evalRepo,
		docRepo:  docRepo,
		worker:   worker,
	}
}

// HandleEvaluate handles POST /api/v1/evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	if len(strings.TrimSpace(req.ProblemStatement)) < minProblemStatementLen {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "problem_statement must be at least 10 characters",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Presentation document not found",
		})
	}

	evaluation := &models.Evaluation{
		ID:               uuid.New(),
		ProblemStatement: strings.TrimSpace(req.ProblemStatement),
		DocumentID:       docID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.evalRepo.Create(evaluation); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create evaluation job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(evaluation.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.EvaluateResponse{
		ID:     evaluation.ID.String(),
		Status: string(models.StatusQueued),
	})
}
