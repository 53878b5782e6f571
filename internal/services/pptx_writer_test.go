package services

import (
	"archive/zip"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchlens/deck-evaluator/internal/models"
)

func TestWriteDeckPackageParts(t *testing.T) {
	writer := NewDeckWriter(t.TempDir())
	require.NoError(t, writer.EnsureOutputDir())

	path, err := writer.WriteDeck(skeletonStructure(), "deck.pptx")
	require.NoError(t, err)
	assert.Equal(t, "deck.pptx", filepath.Base(path))

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
	}

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
	} {
		if !names[part] {
			t.Fatalf("missing package part %s", part)
		}
	}
}

func TestWriteDeckRejectsEmptyStructure(t *testing.T) {
	writer := NewDeckWriter(t.TempDir())
	require.NoError(t, writer.EnsureOutputDir())

	_, err := writer.WriteDeck(&models.PresentationStructure{}, "deck.pptx")
	assert.Error(t, err)

	_, err = writer.WriteDeck(nil, "deck.pptx")
	assert.Error(t, err)
}

func TestWriteDeckRoundTripsThroughParser(t *testing.T) {
	writer := NewDeckWriter(t.TempDir())
	require.NoError(t, writer.EnsureOutputDir())

	structure := &models.PresentationStructure{Slides: []models.SlideSpec{
		{Title: "Opening", Layout: models.LayoutTitleSlide, Content: models.SlideContent{
			"title": "Q&A <Session>", "subtitle": "Fast & loose",
		}},
		{Title: "Details", Layout: models.LayoutTwoContent, Content: models.SlideContent{
			"left":  []interface{}{"left point"},
			"right": []interface{}{"right point"},
		}},
	}}

	path, err := writer.WriteDeck(structure, "roundtrip.pptx")
	require.NoError(t, err)

	content, err := NewPPTXParserService().ExtractFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, content.SlideCount)

	// XML escaping must round-trip special characters intact
	first := strings.Join(content.Slides[0].Body, " ")
	assert.Contains(t, first, "Q&A <Session>")
	assert.Contains(t, first, "Fast & loose")

	second := strings.Join(content.Slides[1].Body, " ")
	assert.Contains(t, second, "Details")
	assert.Contains(t, second, "left point")
	assert.Contains(t, second, "right point")
}
