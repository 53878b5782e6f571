package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"pitchlens/deck-evaluator/internal/models"
)

// pdfParserService extracts PDF-exported decks; each page is one slide. The
// page text has no placeholder metadata, so the first line doubles as title.
type pdfParserService struct{}

func NewPDFParserService() DeckExtractor {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractFromFile(filePath string) (*models.PresentationContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	content := &models.PresentationContent{SlideCount: totalPage}

	extracted := 0
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			content.Slides = append(content.Slides, models.Slide{Number: pageIndex})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep going, a single broken page should not sink the deck
			content.Slides = append(content.Slides, models.Slide{Number: pageIndex})
			continue
		}

		slide := models.Slide{Number: pageIndex}
		lines := nonEmptyLines(text)
		if len(lines) > 0 {
			slide.Title = lines[0]
			slide.Body = lines[1:]
			extracted++
		}

		content.Slides = append(content.Slides, slide)
	}

	if extracted == 0 {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return content, nil
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
