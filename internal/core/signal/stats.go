package signal

import (
	"math"
	"strings"
	"unicode"
)

// stats is the shared tokenization computed once per text
type stats struct {
	text  string
	lower string

	words  []string // raw whitespace-split words
	tokens []string // lowercased, stripped of surrounding punctuation, hyphens kept

	sentences    []string  // terminator-split, trimmed, non-empty
	sentenceLens []float64 // word counts per sentence

	lines []string // non-blank lines
}

func isTerminator(r rune) bool { return r == '.' || r == '!' || r == '?' }

func analyzeText(text string) *stats {
	st := &stats{text: text, lower: strings.ToLower(text)}

	st.words = strings.Fields(text)
	st.tokens = make([]string, 0, len(st.words))
	for _, w := range st.words {
		tok := strings.TrimFunc(strings.ToLower(w), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok != "" {
			st.tokens = append(st.tokens, tok)
		}
	}

	for _, s := range strings.FieldsFunc(text, isTerminator) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		st.sentences = append(st.sentences, s)
		st.sentenceLens = append(st.sentenceLens, float64(len(strings.Fields(s))))
	}

	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) != "" {
			st.lines = append(st.lines, ln)
		}
	}

	return st
}

func meanStdDev(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var v float64
	for _, x := range xs {
		d := x - mean
		v += d * d
	}
	return mean, math.Sqrt(v / float64(len(xs)))
}

// countRune counts occurrences of r in s
func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
