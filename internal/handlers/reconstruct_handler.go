package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pitchlens/deck-evaluator/internal/models"
	"pitchlens/deck-evaluator/internal/services"
)

type ReconstructHandler struct {
	reconstructor services.ReconstructorService
}

func NewReconstructHandler(reconstructor services.ReconstructorService) *ReconstructHandler {
	return &ReconstructHandler{
		reconstructor: reconstructor,
	}
}

// HandleReconstruct handles POST /api/v1/reconstruct. It generates an improved
// deck structure from the evaluation critique and returns it together with a
// download link for the rendered .pptx.
func (h *ReconstructHandler) HandleReconstruct(c *fiber.Ctx) error {
	var req models.ReconstructRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.PresentationSummary) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "presentation_summary is required",
		})
	}

	if strings.TrimSpace(req.ProblemStatement) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "problem_statement is required",
		})
	}

	structure, filePath, err := h.reconstructor.Reconstruct(
		c.Context(), req.PresentationSummary, req.ProblemStatement, req.Analysis, req.CustomInstructions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reconstruct presentation",
		})
	}

	return c.JSON(models.ReconstructResponse{
		Structure:   *structure,
		FilePath:    filePath,
		DownloadURL: downloadURL(filePath),
	})
}

// HandleRefine handles POST /api/v1/reconstruct/chat. Refinement never fails
// the request for model trouble: when the instruction cannot be applied the
// current structure comes back untouched with applied=false.
func (h *ReconstructHandler) HandleRefine(c *fiber.Ctx) error {
	var req models.RefineRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Structure.Slides) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "structure with at least one slide is required",
		})
	}

	if strings.TrimSpace(req.Instruction) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "instruction is required",
		})
	}

	structure, applied, filePath, err := h.reconstructor.Refine(
		c.Context(), &req.Structure, req.Instruction, req.PresentationSummary)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render refined presentation",
		})
	}

	return c.JSON(models.RefineResponse{
		Structure:   *structure,
		Applied:     applied,
		FilePath:    filePath,
		DownloadURL: downloadURL(filePath),
	})
}

func downloadURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/generated/" + filepath.Base(filePath)
}
