package llm

import (
	"encoding/json"
	"strings"

	perr "botscan/internal/platform/errors"
)

// ParseScore interprets a model reply as a score. Models sometimes wrap the
// JSON in markdown fences or prose, so on a direct parse failure the
// outermost {...} is extracted and parsed instead
func ParseScore(content string) (Score, error) {
	content = strings.TrimSpace(content)

	var s Score
	if err := json.Unmarshal([]byte(content), &s); err == nil {
		return clampScore(s), nil
	}

	start := strings.IndexByte(content, '{')
	if start < 0 {
		return Score{}, perr.Upstreamf("no JSON in model response: %s", content)
	}
	end := strings.LastIndexByte(content, '}')
	if end < start {
		return Score{}, perr.Upstreamf("malformed JSON in model response: %s", content)
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &s); err != nil {
		return Score{}, perr.Upstreamf("failed to parse model JSON: %v, raw: %s", err, content)
	}
	return clampScore(s), nil
}

func clampScore(s Score) Score {
	if s.Value < 0 {
		s.Value = 0
	}
	if s.Value > 10 {
		s.Value = 10
	}
	if s.Confidence < 0 {
		s.Confidence = 0
	}
	if s.Confidence > 1 {
		s.Confidence = 1
	}
	return s
}
