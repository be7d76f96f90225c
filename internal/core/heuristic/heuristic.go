// Package heuristic aggregates extractor outputs into a 0..10 sub-score.
// Weights are design constants indexed by the signal enum; nothing is learned
// at runtime, so the same text always produces the same score and fired set
package heuristic

import (
	"math"
	"strings"

	"botscan/internal/core/signal"
)

// baseline keeps a no-signal text in the uncertain band rather than
// scoring it as confidently human
const baseline = 5.0

// shortTextWords is the advisory cutoff below which statistics over
// sentences and tokens are too thin to trust
const shortTextWords = 20

// ShortTextAdvisory is appended to the fired list for texts under the
// cutoff. It carries no weight
const ShortTextAdvisory = "short_text_low_confidence"

// weights scales each signal's -1..+1 contribution before summing
var weights = [signal.Count]float64{
	signal.LowSentenceVariance:    0.8,
	signal.LowVocabularyDiversity: 0.6,
	signal.LowBurstiness:          0.6,
	signal.FormulaicPhrases:       1.0,
	signal.DashUsage:              0.5,
	signal.AIVocabulary:           0.8,
	signal.PunctuationPattern:     0.4,
	signal.HumanInformality:       1.2,
	signal.LineBreakFormatting:    0.4,
	signal.PromotionalPattern:     0.6,
}

// Score is the heuristic engine's verdict over one text
type Score struct {
	Value   int             // 0..10
	Fired   []string        // wire names, enum order, advisories last
	Results []signal.Result // all extractor outputs in enum order
}

// Analyze runs every extractor over canonical text and aggregates
func Analyze(text string) Score {
	results := signal.All(text)

	sum := baseline
	fired := make([]string, 0, len(results))
	for _, r := range results {
		sum += weights[r.Signal] * r.Contribution
		if r.Fired {
			fired = append(fired, r.Signal.String())
		}
	}

	if len(strings.Fields(text)) < shortTextWords {
		fired = append(fired, ShortTextAdvisory)
	}

	return Score{
		Value:   clamp(roundHalfUp(sum), 0, 10),
		Fired:   fired,
		Results: results[:],
	}
}

// roundHalfUp rounds to nearest with ties going up, unlike math.Round
// only in its treatment of negative halves
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
