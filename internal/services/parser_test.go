package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectFromNoisyText(t *testing.T) {
	raw := `Sure! Here is the evaluation you asked for: {"a": 1, "b": [1, 2]} Hope that helps.`

	obj, ok := ExtractJSONObject(raw)
	require.True(t, ok)
	assert.Equal(t, float64(1), obj["a"])
	assert.Len(t, obj["b"], 2)
}

func TestExtractJSONObjectFencedMatchesBare(t *testing.T) {
	bare := `{"scores": {"relevance": 8}, "summary_evaluation": "solid"}`
	fenced := "Here you go:\n```json\n" + bare + "\n```\nDone."

	fromBare, ok := ExtractJSONObject(bare)
	require.True(t, ok)

	fromFenced, ok := ExtractJSONObject(fenced)
	require.True(t, ok)

	assert.Equal(t, fromBare, fromFenced)
}

func TestExtractJSONObjectUnterminatedFence(t *testing.T) {
	raw := "```json\n{\"relevance\": 7}"

	obj, ok := ExtractJSONObject(raw)
	require.True(t, ok)
	assert.Equal(t, float64(7), obj["relevance"])
}

func TestExtractJSONObjectRepairsMalformed(t *testing.T) {
	// Single quotes and a trailing comma, typical sloppy model output
	raw := `{'scores': {'relevance': 8,},}`

	obj, ok := ExtractJSONObject(raw)
	require.True(t, ok)

	scores, ok := obj["scores"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(8), scores["relevance"])
}

func TestExtractJSONObjectTruncatedOutput(t *testing.T) {
	// Cut off mid-stream, no closing braces at all
	raw := `{"scores": {"relevance": 8`

	obj, ok := ExtractJSONObject(raw)
	require.True(t, ok)
	assert.Contains(t, obj, "scores")
}

func TestExtractJSONObjectNoObject(t *testing.T) {
	for _, raw := range []string{"", "   ", "I could not produce a score for this deck."} {
		if _, ok := ExtractJSONObject(raw); ok {
			t.Fatalf("expected no object for %q", raw)
		}
	}
}
