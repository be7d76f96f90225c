// Package signal holds the closed set of heuristic extractors for AI-text detection.
// Each extractor is a pure function over canonical text producing one Result on a
// common -1..+1 scale, positive pushing toward AI and negative toward human.
// The set is a closed enum so the aggregator's weight table is checked at compile
// time rather than through stringly-typed lookups
package signal

// Signal tags one extractor. The order here is the presentation order of
// fired signals in result breakdowns
type Signal int

// The full extractor set
const (
	LowSentenceVariance Signal = iota
	LowVocabularyDiversity
	LowBurstiness
	FormulaicPhrases
	DashUsage
	AIVocabulary
	PunctuationPattern
	HumanInformality
	LineBreakFormatting
	PromotionalPattern

	// Count is the number of signals; keep it last
	Count
)

// ActivationThreshold is the contribution magnitude a signal must exceed to
// be reported as fired. Firing is presentation only and never re-weights the
// sum; in particular the -0.25 human-leaning defaults of the variance family
// sit exactly on the threshold and stay silent
const ActivationThreshold = 0.25

var names = [Count]string{
	LowSentenceVariance:    "low_sentence_variance",
	LowVocabularyDiversity: "low_vocabulary_diversity",
	LowBurstiness:          "low_burstiness",
	FormulaicPhrases:       "formulaic_phrases",
	DashUsage:              "dash_usage",
	AIVocabulary:           "ai_vocabulary",
	PunctuationPattern:     "punctuation_pattern",
	HumanInformality:       "human_informality",
	LineBreakFormatting:    "line_break_formatting",
	PromotionalPattern:     "promotional_pattern",
}

// String returns the wire name of the signal
func (s Signal) String() string {
	if s < 0 || s >= Count {
		return "unknown"
	}
	return names[s]
}

// Result is one extractor's output. Contribution is in [-1,1]
type Result struct {
	Signal       Signal
	Contribution float64
	Fired        bool
}

func result(s Signal, c float64) Result {
	return Result{Signal: s, Contribution: c, Fired: c > ActivationThreshold || c < -ActivationThreshold}
}

// All runs every extractor over text and returns results in enum order.
// Tokenization and sentence splitting are shared across extractors
func All(text string) [Count]Result {
	st := analyzeText(text)
	return [Count]Result{
		result(LowSentenceVariance, sentenceVariance(st)),
		result(LowVocabularyDiversity, vocabularyDiversity(st)),
		result(LowBurstiness, burstiness(st)),
		result(FormulaicPhrases, formulaicPhrases(st)),
		result(DashUsage, dashUsage(st)),
		result(AIVocabulary, aiVocabulary(st)),
		result(PunctuationPattern, punctuationPattern(st)),
		result(HumanInformality, humanInformality(st)),
		result(LineBreakFormatting, lineBreakFormatting(st)),
		result(PromotionalPattern, promotionalPattern(st)),
	}
}
