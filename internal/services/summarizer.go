package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

type SummarizerService interface {
	// GetPresentationSummary flattens the deck into a single bounded string,
	// the only representation passed to scoring and judgment. It never fails:
	// if the LLM condensation pass breaks, the text is hard-truncated instead.
	GetPresentationSummary(ctx context.Context, content *models.PresentationContent) string
}

type summarizerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	maxChars      int
}

func NewSummarizerService(generator TextGenerator, maxChars int) SummarizerService {
	if maxChars <= 0 {
		maxChars = 4000
	}
	return &summarizerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		maxChars:      maxChars,
	}
}

func (s *summarizerService) GetPresentationSummary(ctx context.Context, content *models.PresentationContent) string {
	combined := concatenateSlides(content)

	if len(combined) <= s.maxChars {
		return combined
	}

	log.Printf("📝 Deck text is %d chars, condensing to at most %d...\n", len(combined), s.maxChars)

	prompt := s.promptBuilder.BuildCondensePrompt(combined, s.maxChars)
	condensed, err := s.generator.GenerateText(ctx, prompt, 0.2)
	if err == nil {
		condensed = strings.TrimSpace(condensed)
		if condensed != "" {
			if len(condensed) > s.maxChars {
				condensed = truncate(condensed, s.maxChars)
			}
			return condensed
		}
	}

	log.Printf("⚠️  Condensation failed (%v). Falling back to truncation.\n", err)
	return truncate(combined, s.maxChars)
}

func concatenateSlides(content *models.PresentationContent) string {
	var parts []string

	for _, slide := range content.Slides {
		var slideParts []string

		header := fmt.Sprintf("Slide %d", slide.Number)
		if slide.Title != "" {
			header = fmt.Sprintf("Slide %d - %s", slide.Number, slide.Title)
		}
		slideParts = append(slideParts, header+":")

		if len(slide.Body) > 0 {
			slideParts = append(slideParts, strings.Join(slide.Body, " "))
		}

		if slide.Notes != "" {
			slideParts = append(slideParts, "Notes: "+slide.Notes)
		}

		parts = append(parts, strings.Join(slideParts, " "))
	}

	return strings.Join(parts, "\n\n")
}

// truncate cuts by length only; keeping the head of the deck is deliberate,
// no attempt is made to pick the most important slides.
func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	if maxChars <= 3 {
		return text[:maxChars]
	}
	return text[:maxChars-3] + "..."
}
