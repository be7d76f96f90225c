// Package fusion combines the heuristic sub-score with an optional model
// judgment into the final verdict. The model-absent path is first-class, not
// an error path: the service runs degraded on heuristics alone
package fusion

import "math"

// Weighting between the two engines when both are present
const (
	modelWeight     = 0.6
	heuristicWeight = 0.4
)

// heuristicOnlyConfidence is deliberately modest and capped: a single-engine
// judgment never reports more than 0.5 no matter how strong its signals
const (
	heuristicOnlyConfidence = 0.35
	heuristicOnlyCap        = 0.5
)

// ModelScore is a remote judgment, already clamped by the adapter
type ModelScore struct {
	Value      int     // 0..10
	Confidence float64 // 0..1
}

// Verdict is the fused result
type Verdict struct {
	Score      int
	Confidence float64
	Label      string
}

// Fuse combines scores. model == nil means the judgment is absent, either
// because no provider is configured or because the provider call failed
func Fuse(heuristic int, model *ModelScore) Verdict {
	if model == nil {
		return Verdict{
			Score:      clamp(heuristic),
			Confidence: math.Min(heuristicOnlyConfidence, heuristicOnlyCap),
			Label:      Label(clamp(heuristic), true),
		}
	}

	combined := float64(model.Value)*modelWeight + float64(heuristic)*heuristicWeight
	score := clamp(roundHalfUp(combined))
	conf := math.Min(model.Confidence*0.7+0.3, 1.0)

	return Verdict{
		Score:      score,
		Confidence: conf,
		Label:      Label(score, false),
	}
}

// Label maps a 0..10 score to its band. In heuristics-only mode the middle
// band reads uncertain rather than mixed since there is no second opinion
func Label(score int, heuristicsOnly bool) string {
	switch {
	case score <= 3:
		return "human"
	case score <= 5:
		if heuristicsOnly {
			return "uncertain"
		}
		return "mixed"
	case score <= 7:
		return "likely_ai"
	default:
		return "ai"
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
