package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"pitchlens/deck-evaluator/internal/models"
)

// ReconstructorService regenerates a pitch deck structure from an evaluation
// critique and applies chat-style refinements to an existing structure.
type ReconstructorService interface {
	// Reconstruct builds an improved deck structure and renders it to a .pptx.
	Reconstruct(ctx context.Context, summary, problemStatement string, analysis models.Critique, customInstructions string) (*models.PresentationStructure, string, error)
	// Refine applies one instruction to the current structure. When the model
	// output cannot be used, the original structure is returned unchanged with
	// applied false and no file is rendered.
	Refine(ctx context.Context, current *models.PresentationStructure, instruction, summary string) (*models.PresentationStructure, bool, string, error)
}

type reconstructorService struct {
	generator TextGenerator
	fallback  TextGenerator
	prompts   *PromptBuilder
	writer    *DeckWriter
}

func NewReconstructorService(generator, fallback TextGenerator, prompts *PromptBuilder, writer *DeckWriter) ReconstructorService {
	return &reconstructorService{
		generator: generator,
		fallback:  fallback,
		prompts:   prompts,
		writer:    writer,
	}
}

const structureTemperature = 0.4

// Reconstruct implements ReconstructorService.
func (r *reconstructorService) Reconstruct(ctx context.Context, summary, problemStatement string, analysis models.Critique, customInstructions string) (*models.PresentationStructure, string, error) {
	prompt := r.prompts.BuildStructurePrompt(summary, problemStatement, analysis, customInstructions)

	structure := r.generateStructure(ctx, prompt)
	if structure == nil {
		log.Printf("⚠️ Structure generation failed on both models, using skeleton deck")
		structure = skeletonStructure()
	}

	filePath, err := r.renderDeck(structure)
	if err != nil {
		return nil, "", err
	}

	log.Printf("✅ Reconstructed deck with %d slides: %s", len(structure.Slides), filePath)
	return structure, filePath, nil
}

// Refine implements ReconstructorService.
func (r *reconstructorService) Refine(ctx context.Context, current *models.PresentationStructure, instruction, summary string) (*models.PresentationStructure, bool, string, error) {
	if current == nil || len(current.Slides) == 0 {
		return nil, false, "", fmt.Errorf("no current structure to refine")
	}

	prompt := r.prompts.BuildRefinePrompt(current, instruction, summary)

	// Refinement uses the primary model only, and a rejected edit produces no
	// file: the caller keeps the deck it already has.
	refined := r.attemptStructure(ctx, r.generator, prompt)
	if refined == nil {
		log.Printf("⚠️ Refinement produced no usable structure, keeping the current deck")
		return current, false, "", nil
	}

	filePath, err := r.renderDeck(refined)
	if err != nil {
		return nil, false, "", err
	}

	return refined, true, filePath, nil
}

// generateStructure runs the prompt through the primary generator, then the
// fallback model, and returns nil when neither yields a usable structure.
func (r *reconstructorService) generateStructure(ctx context.Context, prompt string) *models.PresentationStructure {
	for _, gen := range []TextGenerator{r.generator, r.fallback} {
		if structure := r.attemptStructure(ctx, gen, prompt); structure != nil {
			return structure
		}
	}
	return nil
}

// attemptStructure runs one generate-parse cycle against a single model.
func (r *reconstructorService) attemptStructure(ctx context.Context, gen TextGenerator, prompt string) *models.PresentationStructure {
	if gen == nil {
		return nil
	}

	raw, err := gen.GenerateText(ctx, prompt, structureTemperature)
	if err != nil {
		log.Printf("⚠️ Structure generation attempt failed: %v", err)
		return nil
	}

	obj, ok := ExtractJSONObject(raw)
	if !ok {
		log.Printf("⚠️ Structure output contained no JSON object")
		return nil
	}

	structure := parseStructure(obj)
	if structure == nil {
		log.Printf("⚠️ Structure output had no usable slides")
	}
	return structure
}

func (r *reconstructorService) renderDeck(structure *models.PresentationStructure) (string, error) {
	filename := fmt.Sprintf("deck_%s.pptx", uuid.New().String())
	filePath, err := r.writer.WriteDeck(structure, filename)
	if err != nil {
		return "", fmt.Errorf("failed to render deck: %w", err)
	}
	return filePath, nil
}

// parseStructure converts a decoded JSON object into a PresentationStructure.
// Slides missing a title or layout get defaults; an empty slide list is a
// failure and returns nil.
func parseStructure(obj map[string]interface{}) *models.PresentationStructure {
	rawSlides, ok := obj["slides"].([]interface{})
	if !ok || len(rawSlides) == 0 {
		return nil
	}

	structure := &models.PresentationStructure{}
	for _, rawSlide := range rawSlides {
		slideObj, ok := rawSlide.(map[string]interface{})
		if !ok {
			continue
		}

		spec := models.SlideSpec{
			Layout:  models.LayoutTitleAndContent,
			Content: models.SlideContent{},
		}
		if title, ok := slideObj["title"].(string); ok {
			spec.Title = title
		}
		if layout, ok := slideObj["layout"].(string); ok && knownLayout(layout) {
			spec.Layout = models.SlideLayout(layout)
		}
		if content, ok := slideObj["content"].(map[string]interface{}); ok {
			spec.Content = models.SlideContent(content)
		}

		structure.Slides = append(structure.Slides, spec)
	}

	if len(structure.Slides) == 0 {
		return nil
	}
	return structure
}

func knownLayout(layout string) bool {
	switch models.SlideLayout(layout) {
	case models.LayoutTitleSlide, models.LayoutTitleAndContent, models.LayoutTwoContent, models.LayoutSectionHeader:
		return true
	}
	return false
}

// skeletonStructure is the minimal three-slide deck used when no model can
// produce a structure.
func skeletonStructure() *models.PresentationStructure {
	return &models.PresentationStructure{
		Slides: []models.SlideSpec{
			{
				Title:  "Project Title",
				Layout: models.LayoutTitleSlide,
				Content: models.SlideContent{
					"title":    "Project Name",
					"subtitle": "Innovative Solution",
				},
			},
			{
				Title:  "The Problem",
				Layout: models.LayoutTitleAndContent,
				Content: models.SlideContent{
					"bullets": []interface{}{"Describe the problem here."},
				},
			},
			{
				Title:  "Our Solution",
				Layout: models.LayoutTitleAndContent,
				Content: models.SlideContent{
					"bullets": []interface{}{"Describe the solution here."},
				},
			},
		},
	}
}
