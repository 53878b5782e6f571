package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlideContentStrings(t *testing.T) {
	content := SlideContent{
		"single":  "one line",
		"list":    []interface{}{"a", "b", 3, "c"},
		"typed":   []string{"x", "y"},
		"empty":   "",
		"numeric": 42,
	}

	assert.Equal(t, []string{"one line"}, content.Strings("single"))
	assert.Equal(t, []string{"a", "b", "c"}, content.Strings("list"))
	assert.Equal(t, []string{"x", "y"}, content.Strings("typed"))
	assert.Nil(t, content.Strings("empty"))
	assert.Nil(t, content.Strings("numeric"))
	assert.Nil(t, content.Strings("missing"))
}

func TestSlideContentString(t *testing.T) {
	content := SlideContent{"title": "Main", "list": []interface{}{"a"}}

	assert.Equal(t, "Main", content.String("title"))
	assert.Equal(t, "", content.String("list"))
	assert.Equal(t, "", content.String("missing"))
}

func TestCritiqueOfCarriesRegenerationInputs(t *testing.T) {
	report := &EvaluationReport{
		Strengths:       []string{"kept out of the critique"},
		Weaknesses:      []string{"no demo"},
		MissingElements: []string{"Revenue Model"},
		DetailedAnalysis: DetailedAnalysis{
			TechnicalDepth: "shallow",
		},
	}

	critique := CritiqueOf(report)
	assert.Equal(t, report.Weaknesses, critique.Weaknesses)
	assert.Equal(t, report.MissingElements, critique.MissingElements)
	assert.Equal(t, "shallow", critique.DetailedAnalysis.TechnicalDepth)
}
