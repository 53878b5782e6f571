package services

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ExtractJSONObject pulls a single JSON object out of raw LLM output, which may
// be wrapped in commentary, markdown fences, or cut off mid-stream. Strategies
// are tried in order; the first one that parses wins. Returns false only when
// every strategy fails.
func ExtractJSONObject(raw string) (map[string]interface{}, bool) {
	// Strategy 1: greedy brace span, first '{' to last '}'
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && end > start {
		if obj, ok := tryParseObject(raw[start : end+1]); ok {
			return obj, true
		}
	}

	// Strategy 2: interior of a fenced code block
	if interior, ok := extractFencedBlock(raw); ok {
		if obj, ok := tryParseObject(interior); ok {
			return obj, true
		}
	}

	// Strategy 3: the whole text as-is
	return tryParseObject(raw)
}

func tryParseObject(text string) (map[string]interface{}, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, true
	}

	// Malformed JSON (single quotes, trailing commas, truncation) is common in
	// model output; give the repairer one shot before rejecting the attempt.
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func extractFencedBlock(text string) (string, bool) {
	marker := "```json"
	idx := strings.Index(text, marker)
	if idx == -1 {
		marker = "```"
		idx = strings.Index(text, marker)
	}
	if idx == -1 {
		return "", false
	}

	rest := text[idx+len(marker):]
	closing := strings.Index(rest, "```")
	if closing == -1 {
		// Unterminated fence, take everything after the opener
		return strings.TrimSpace(rest), true
	}
	return strings.TrimSpace(rest[:closing]), true
}
