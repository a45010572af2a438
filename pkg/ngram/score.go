package ngram

import (
	"math"
	"strings"
)

const (
	freqBoostScale    = 10.0
	lengthPenaltyRate = 0.1
)

// WordScore ranks word as a completion of prefix.
//
// The characters of word after prefix are scored one by one with
// CharProbability, carrying a rolling context of at most order-1 characters
// that starts with the tail of prefix. Log probabilities are summed and
// exponentiated once at the end, then multiplied by a frequency boost
// (1 + ln(1+freq)/10) and a length penalty 1/(1 + 0.1*remaining).
//
// Words that do not start with prefix score 0. The score is a ranking value,
// not a probability.
func (m *Model) WordScore(prefix, word string) float64 {
	if !strings.HasPrefix(word, prefix) {
		return 0
	}

	width := m.order - 1
	ctx := suffix(prefix, min(len(prefix), width))

	logProb := 0.0
	for i := len(prefix); i < len(word); i++ {
		p := m.CharProbability(ctx, word[i])
		if p <= 0 {
			return 0
		}
		logProb += math.Log(p)
		ctx = suffix(ctx+word[i:i+1], min(len(ctx)+1, width))
	}

	remaining := float64(len(word) - len(prefix))
	freqBoost := math.Log(1+float64(m.freq[word])) / freqBoostScale
	lengthPenalty := 1.0 / (1.0 + lengthPenaltyRate*remaining)
	return math.Exp(logProb) * (1 + freqBoost) * lengthPenalty
}

// suffix returns the last n bytes of s.
func suffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
