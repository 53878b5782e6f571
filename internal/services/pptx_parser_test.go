package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePPTXFixture(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.pptx")
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	zw := zip.NewWriter(out)
	for name, content := range entries {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

const fixtureSlideXML = `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>The </a:t></a:r><a:r><a:t>Problem</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:sp>
      <p:nvSpPr><p:nvPr/></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>First bullet</a:t></a:r></a:p><a:p><a:r><a:t>Second bullet</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:graphicFrame>
      <a:graphic><a:graphicData>
        <a:tbl><a:tr><a:tc><a:txBody><a:p><a:r><a:t>Metric</a:t></a:r></a:p></a:txBody></a:tc>
        <a:tc><a:txBody><a:p><a:r><a:t>42</a:t></a:r></a:p></a:txBody></a:tc></a:tr></a:tbl>
      </a:graphicData></a:graphic>
    </p:graphicFrame>
  </p:spTree></p:cSld>
</p:sld>`

const fixtureNotesXML = `<?xml version="1.0"?>
<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="sldNum"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>1</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="body"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>Speaker reminder</a:t></a:r></a:p></p:txBody>
    </p:sp>
  </p:spTree></p:cSld>
</p:notes>`

func TestPPTXParserExtractsSlideContent(t *testing.T) {
	path := writePPTXFixture(t, map[string]string{
		"ppt/slides/slide1.xml":           fixtureSlideXML,
		"ppt/notesSlides/notesSlide1.xml": fixtureNotesXML,
	})

	content, err := NewPPTXParserService().ExtractFromFile(path)
	require.NoError(t, err)

	require.Equal(t, 1, content.SlideCount)
	slide := content.Slides[0]

	assert.Equal(t, 1, slide.Number)
	assert.Equal(t, "The Problem", slide.Title)
	assert.Contains(t, slide.Body, "First bullet Second bullet")
	assert.Contains(t, slide.Body, "Metric 42")
	// Slide-number placeholder on the notes page is skipped
	assert.Equal(t, "Speaker reminder", slide.Notes)
}

func TestPPTXParserOrdersSlidesNumerically(t *testing.T) {
	simple := func(text string) string {
		return `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree><p:sp><p:nvSpPr><p:nvPr/></p:nvSpPr>
  <p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody>
  </p:sp></p:spTree></p:cSld></p:sld>`
	}

	// Ten slides so lexicographic ordering would put slide10 second
	entries := map[string]string{}
	texts := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	for i, text := range texts {
		entries["ppt/slides/slide"+strconv.Itoa(i+1)+".xml"] = simple(text)
	}

	content, err := NewPPTXParserService().ExtractFromFile(writePPTXFixture(t, entries))
	require.NoError(t, err)

	require.Equal(t, 10, content.SlideCount)
	assert.Equal(t, []string{"two"}, content.Slides[1].Body)
	assert.Equal(t, []string{"ten"}, content.Slides[9].Body)
}

func TestPPTXParserRejectsDeckWithoutSlides(t *testing.T) {
	path := writePPTXFixture(t, map[string]string{
		"ppt/presentation.xml": "<p:presentation/>",
	})

	_, err := NewPPTXParserService().ExtractFromFile(path)
	assert.Error(t, err)
}
