/*
Package ngram implements the character-level n-gram language model behind
typeahead's word predictions.

A Model is trained once from raw corpus text and is read-only afterwards.
Training normalizes the corpus into a single character stream, counts every
(context, next character) pair for context lengths 0..n-1, and derives backoff
weights for the higher orders. Queries walk from the longest usable context
down to the empty one and answer with the first order that has evidence,
smoothed additively over a fixed 27 symbol alphabet.

	model, err := ngram.New(text, 3)
	if err != nil {
		return err
	}
	for _, p := range model.PredictTopWords("ca", 5) {
		fmt.Println(p.Word, p.Score)
	}

Word scores are a ranking heuristic (smoothed character likelihood, a
frequency boost and a length penalty) and are not normalized across
candidates.

All tables are plain maps that are never written after New returns, so a
Model can be shared by any number of goroutines without locking.
*/
package ngram

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// Alpha is the additive smoothing pseudo-count.
	Alpha = 0.01
	// AlphabetSize covers the 26 lowercase letters and the boundary symbol.
	AlphabetSize = 27
	// DefaultTopK is used when a caller asks for k <= 0 predictions.
	DefaultTopK = 10

	// StartMarker and EndMarker delimit sentences in the token stream.
	StartMarker = "^"
	EndMarker   = "$"

	// Boundary is the symbol that separates words in the character stream.
	// Sentence markers are rendered as Boundary as well.
	Boundary byte = ' '
)

// ErrInvalidOrder is returned by New when the order is not positive.
var ErrInvalidOrder = errors.New("invalid model order")

// Model is a trained character n-gram model.
type Model struct {
	order     int
	tables    *countTable
	weights   []map[string]float64
	vocab     *Vocabulary
	freq      map[string]int
	streamLen int
	tokens    int
}

// Stats summarizes a trained model.
type Stats struct {
	Order      int
	Vocabulary int
	Tokens     int
	StreamLen  int
	// Contexts holds the number of distinct contexts per order, index 0 unused.
	Contexts []int
}

// New trains a model of the given order on corpusText.
// An empty corpus yields a usable model that predicts nothing and answers
// every character query with the uniform probability.
func New(corpusText string, order int) (*Model, error) {
	if order <= 0 {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}

	start := time.Now()
	corpus := Preprocess(corpusText, order)
	tables := train(corpus.Stream, order)

	m := &Model{
		order:     order,
		tables:    tables,
		weights:   backoffWeights(tables),
		vocab:     corpus.Vocabulary,
		freq:      corpus.Frequency,
		streamLen: len(corpus.Stream),
		tokens:    len(corpus.Tokens),
	}

	log.Debugf("Trained order-%d model: %d words, %d chars in [ %v ]",
		order, m.vocab.Len(), m.streamLen, time.Since(start))
	if m.vocab.Len() == 0 {
		log.Warn("Corpus produced an empty vocabulary, predictions will be empty")
	}
	return m, nil
}

// Order returns n, the maximum number of characters used per prediction.
func (m *Model) Order() int {
	return m.order
}

// Vocabulary returns the words seen during training.
func (m *Model) Vocabulary() *Vocabulary {
	return m.vocab
}

// Frequency returns how often token occurred in the training token stream.
// Sentence markers are counted too.
func (m *Model) Frequency(token string) int {
	return m.freq[token]
}

// Stats returns size information about the trained tables.
func (m *Model) Stats() Stats {
	contexts := make([]int, m.order+1)
	for j := 1; j <= m.order; j++ {
		contexts[j] = len(m.tables.totals[j])
	}
	return Stats{
		Order:      m.order,
		Vocabulary: m.vocab.Len(),
		Tokens:     m.tokens,
		StreamLen:  m.streamLen,
		Contexts:   contexts,
	}
}
