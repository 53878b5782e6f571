package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pitchlens/deck-evaluator/internal/models"
	"pitchlens/deck-evaluator/internal/repositories"
)

type ResultHandler struct {
	evalRepo repositories.EvaluationRepository
}

func NewResultHandler(evalRepo repositories.EvaluationRepository) *ResultHandler {
	return &ResultHandler{
		evalRepo: evalRepo,
	}
}

// HandleGetResult handles GET /api/v1/result/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	evalID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	response := models.ResultResponse{
		ID:     evaluation.ID.String(),
		Status: string(evaluation.Status),
	}

	// If completed, include the full report and the deck summary so the client
	// can feed both straight into reconstruction.
	if evaluation.Status == models.StatusCompleted && evaluation.ReportJSON != nil {
		var report models.EvaluationReport
		if err := json.Unmarshal([]byte(*evaluation.ReportJSON), &report); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Stored report is unreadable",
			})
		}
		response.Report = &report

		if evaluation.PresentationSummary != nil {
			response.PresentationSummary = *evaluation.PresentationSummary
		}
	}

	if evaluation.Status == models.StatusFailed && evaluation.ErrorMessage != nil {
		response.ErrorMessage = evaluation.ErrorMessage
	}

	return c.JSON(response)
}
