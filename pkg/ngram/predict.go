package ngram

import (
	"sort"
	"strings"
)

// Prediction is a ranked completion.
type Prediction struct {
	Word  string
	Score float64
}

// PredictTopWords returns at most k vocabulary words starting with prefix,
// best first. The prefix is matched case-insensitively, k <= 0 means
// DefaultTopK, and an empty prefix ranks the whole vocabulary.
// Equal scores keep the order in which the words were first seen in training.
func (m *Model) PredictTopWords(prefix string, k int) []Prediction {
	if k <= 0 {
		k = DefaultTopK
	}
	prefix = strings.ToLower(prefix)

	candidates := m.vocab.WithPrefix(prefix)
	predictions := make([]Prediction, len(candidates))
	for i, word := range candidates {
		predictions[i] = Prediction{
			Word:  word,
			Score: m.WordScore(prefix, word),
		}
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	if len(predictions) > k {
		predictions = predictions[:k]
	}
	return predictions
}
