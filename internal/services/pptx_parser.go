package services

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"pitchlens/deck-evaluator/internal/models"
)

// DeckExtractor reads slide text out of a presentation file.
type DeckExtractor interface {
	ExtractFromFile(filePath string) (*models.PresentationContent, error)
}

type pptxParserService struct{}

func NewPPTXParserService() DeckExtractor {
	return &pptxParserService{}
}

var slidePathPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func (p *pptxParserService) ExtractFromFile(filePath string) (*models.PresentationContent, error) {
	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPTX: %w", err)
	}
	defer reader.Close()

	slideFiles := map[int]*zip.File{}
	notesFiles := map[int]*zip.File{}

	for _, f := range reader.File {
		if m := slidePathPattern.FindStringSubmatch(f.Name); m != nil {
			n, _ := strconv.Atoi(m[1])
			slideFiles[n] = f
			continue
		}
		if strings.HasPrefix(f.Name, "ppt/notesSlides/notesSlide") && strings.HasSuffix(f.Name, ".xml") {
			numStr := strings.TrimSuffix(strings.TrimPrefix(f.Name, "ppt/notesSlides/notesSlide"), ".xml")
			if n, err := strconv.Atoi(numStr); err == nil {
				notesFiles[n] = f
			}
		}
	}

	if len(slideFiles) == 0 {
		return nil, fmt.Errorf("no slides found in PPTX")
	}

	numbers := make([]int, 0, len(slideFiles))
	for n := range slideFiles {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	content := &models.PresentationContent{SlideCount: len(numbers)}

	for idx, n := range numbers {
		slide, err := parseSlideFile(slideFiles[n])
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide %d: %w", n, err)
		}
		slide.Number = idx + 1

		if notesFile, ok := notesFiles[n]; ok {
			if notes, err := parseNotesFile(notesFile); err == nil {
				slide.Notes = notes
			}
		}

		content.Slides = append(content.Slides, *slide)
	}

	return content, nil
}

// Slide shapes are heterogeneous; each one is classified as exactly one
// element kind exposing a uniform text extraction.
type slideElement interface {
	ExtractText() []string
}

type textElement struct {
	paragraphs []string
}

func (e textElement) ExtractText() []string { return e.paragraphs }

type tableElement struct {
	cells []string
}

func (e tableElement) ExtractText() []string { return e.cells }

type otherElement struct{}

func (e otherElement) ExtractText() []string { return nil }

// Minimal DrawingML slide structure; only text-bearing parts are decoded.
type slideXML struct {
	CSld struct {
		SpTree spTreeXML `xml:"spTree"`
	} `xml:"cSld"`
}

type spTreeXML struct {
	Shapes []shapeXML        `xml:"sp"`
	Frames []graphicFrameXML `xml:"graphicFrame"`
}

type shapeXML struct {
	NvSpPr struct {
		NvPr struct {
			Ph *placeholderXML `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type placeholderXML struct {
	Type string `xml:"type,attr"`
}

type graphicFrameXML struct {
	Graphic struct {
		GraphicData struct {
			Tbl *tableXML `xml:"tbl"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

type tableCellXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}

type txBodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Text string `xml:"t"`
}

func parseSlideFile(f *zip.File) (*models.Slide, error) {
	var doc slideXML
	if err := decodeZipXML(f, &doc); err != nil {
		return nil, err
	}

	slide := &models.Slide{}

	for _, sp := range doc.CSld.SpTree.Shapes {
		if isTitlePlaceholder(sp) {
			slide.Title = strings.TrimSpace(strings.Join(shapeParagraphs(sp), " "))
			continue
		}

		element := classifyShape(sp)
		if text := joinedText(element); text != "" {
			slide.Body = append(slide.Body, text)
		}
	}

	for _, frame := range doc.CSld.SpTree.Frames {
		var element slideElement = otherElement{}
		if tbl := frame.Graphic.GraphicData.Tbl; tbl != nil {
			element = tableElementFrom(tbl)
		}
		if text := joinedText(element); text != "" {
			slide.Body = append(slide.Body, text)
		}
	}

	return slide, nil
}

func parseNotesFile(f *zip.File) (string, error) {
	var doc slideXML
	if err := decodeZipXML(f, &doc); err != nil {
		return "", err
	}

	var parts []string
	for _, sp := range doc.CSld.SpTree.Shapes {
		// Skip the slide-number and header placeholders on the notes page
		if ph := sp.NvSpPr.NvPr.Ph; ph != nil && ph.Type != "body" {
			continue
		}
		if text := strings.TrimSpace(strings.Join(shapeParagraphs(sp), "\n")); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func decodeZipXML(f *zip.File, target interface{}) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", f.Name, err)
	}
	return nil
}

func isTitlePlaceholder(sp shapeXML) bool {
	ph := sp.NvSpPr.NvPr.Ph
	return ph != nil && (ph.Type == "title" || ph.Type == "ctrTitle")
}

func classifyShape(sp shapeXML) slideElement {
	if sp.TxBody == nil {
		return otherElement{}
	}
	return textElement{paragraphs: shapeParagraphs(sp)}
}

func tableElementFrom(tbl *tableXML) tableElement {
	var cells []string
	for _, row := range tbl.Rows {
		for _, cell := range row.Cells {
			if cell.TxBody == nil {
				continue
			}
			if text := strings.TrimSpace(joinParagraphs(cell.TxBody.Paragraphs, " ")); text != "" {
				cells = append(cells, text)
			}
		}
	}
	return tableElement{cells: cells}
}

func shapeParagraphs(sp shapeXML) []string {
	if sp.TxBody == nil {
		return nil
	}
	var paragraphs []string
	for _, p := range sp.TxBody.Paragraphs {
		var runs []string
		for _, r := range p.Runs {
			runs = append(runs, r.Text)
		}
		if line := strings.TrimSpace(strings.Join(runs, "")); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

func joinParagraphs(paragraphs []paragraphXML, sep string) string {
	var lines []string
	for _, p := range paragraphs {
		var runs []string
		for _, r := range p.Runs {
			runs = append(runs, r.Text)
		}
		if line := strings.TrimSpace(strings.Join(runs, "")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, sep)
}

func joinedText(element slideElement) string {
	return strings.TrimSpace(strings.Join(element.ExtractText(), " "))
}
