package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

// extractorService dispatches to the format-specific parser by file extension.
type extractorService struct {
	pptx DeckExtractor
	pdf  DeckExtractor
}

func NewExtractorService() DeckExtractor {
	return &extractorService{
		pptx: NewPPTXParserService(),
		pdf:  NewPDFParserService(),
	}
}

func (e *extractorService) ExtractFromFile(filePath string) (*models.PresentationContent, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pptx":
		return e.pptx.ExtractFromFile(filePath)
	case ".pdf":
		return e.pdf.ExtractFromFile(filePath)
	default:
		return nil, fmt.Errorf("unsupported presentation format: %s", filepath.Ext(filePath))
	}
}
