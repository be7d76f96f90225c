package signal

import "strings"

// sentenceVariance measures how uniform sentence word counts are.
// Machine text tends toward uniform lengths, so low variance pushes AI
func sentenceVariance(st *stats) float64 {
	if len(st.sentenceLens) < 2 {
		return 0
	}
	_, std := meanStdDev(st.sentenceLens)
	variance := std * std
	switch {
	case variance < 5.0:
		return 1.0
	case variance < 15.0:
		return 0.5
	default:
		return -0.25
	}
}

// vocabularyDiversity is the type-token ratio over normalized tokens
func vocabularyDiversity(st *stats) float64 {
	if len(st.tokens) == 0 {
		return 0
	}
	uniq := make(map[string]struct{}, len(st.tokens))
	for _, t := range st.tokens {
		uniq[t] = struct{}{}
	}
	ttr := float64(len(uniq)) / float64(len(st.tokens))
	switch {
	case ttr < 0.4:
		return 1.0
	case ttr < 0.55:
		return 0.5
	default:
		return -0.25
	}
}

// burstiness is (std-mean)/(std+mean) of sentence lengths mapped onto [0,1].
// Human writing alternates long and short sentences; uniform flow pushes AI
func burstiness(st *stats) float64 {
	if len(st.sentenceLens) < 3 {
		return 0
	}
	mean, std := meanStdDev(st.sentenceLens)
	if mean == 0 {
		return 0
	}
	b := ((std-mean)/(std+mean) + 1.0) / 2.0
	switch {
	case b < 0.3:
		return 1.0
	case b < 0.5:
		return 0.4
	default:
		return -0.25
	}
}

func formulaicPhrases(st *stats) float64 {
	n := 0
	for _, p := range formulaicPhraseList {
		if strings.Contains(st.lower, p) {
			n++
		}
	}
	switch {
	case n >= 3:
		return 1.0
	case n >= 1:
		return 0.5
	default:
		return -0.2
	}
}

// dashUsage counts em dashes, en dashes and spaced hyphens per 100 words
func dashUsage(st *stats) float64 {
	if len(st.words) == 0 {
		return 0
	}
	dashes := countRune(st.text, '—') + countRune(st.text, '–') +
		strings.Count(st.text, " - ")
	per100 := float64(dashes) / float64(len(st.words)) * 100
	switch {
	case per100 >= 1.5:
		return 1.0
	case per100 >= 0.75:
		return 0.5
	default:
		return 0
	}
}

// aiVocabulary matches the curated word list on token boundaries only, so
// "grandmastery" never fires an entry for "mastery"
func aiVocabulary(st *stats) float64 {
	n := 0
	for _, t := range st.tokens {
		if _, ok := aiWordSet[t]; ok {
			n++
		}
	}
	switch {
	case n >= 3:
		return 1.0
	case n >= 1:
		return 0.5
	default:
		return 0
	}
}

// punctuationPattern looks for machine-flat punctuation: nearly every
// terminator a period, or an unusually high comma rate
func punctuationPattern(st *stats) float64 {
	if len(st.sentences) < 3 {
		return 0
	}
	terms := 0
	for _, r := range st.text {
		if isTerminator(r) {
			terms++
		}
	}
	if terms == 0 {
		return 0
	}
	periodRatio := float64(countRune(st.text, '.')) / float64(terms)
	if periodRatio > 0.95 {
		return 0.6
	}
	if len(st.words) > 0 {
		commaRatio := float64(countRune(st.text, ',')) / float64(len(st.words))
		if commaRatio > 0.15 {
			return 0.6
		}
	}
	return 0
}

// humanInformality counts slang tokens and stacked terminal punctuation,
// both markers of casual human writing. Contribution is negative
func humanInformality(st *stats) float64 {
	n := 0
	for _, t := range st.tokens {
		if _, ok := slangSet[t]; ok {
			n++
		}
	}
	n += strings.Count(st.text, "!!") + strings.Count(st.text, "??")
	switch {
	case n >= 3:
		return -1.0
	case n >= 1:
		return -0.5
	default:
		return 0
	}
}

// lineBreakFormatting detects the one-sentence-per-line paragraph shape
func lineBreakFormatting(st *stats) float64 {
	if len(st.lines) < 3 {
		return 0
	}
	single := 0
	for _, ln := range st.lines {
		terms := 0
		for _, r := range ln {
			if isTerminator(r) {
				terms++
			}
		}
		if terms <= 1 {
			single++
		}
	}
	if float64(single)/float64(len(st.lines)) >= 0.8 {
		return 0.6
	}
	return 0
}

func promotionalPattern(st *stats) float64 {
	n := 0
	for _, p := range promotionalPhraseList {
		if strings.Contains(st.lower, p) {
			n++
		}
	}
	switch {
	case n >= 2:
		return 1.0
	case n >= 1:
		return 0.5
	default:
		return 0
	}
}
