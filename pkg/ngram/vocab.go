package ngram

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Vocabulary is the set of distinct training words.
// Words keep the order in which they were first seen, which is the order
// ties are broken in when ranking.
type Vocabulary struct {
	words []string
	// index maps each word to its position in words.
	index *patricia.Trie
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{
		index: patricia.NewTrie(),
	}
}

// add appends word unless it is already known.
func (v *Vocabulary) add(word string) bool {
	if !v.index.Insert(patricia.Prefix(word), len(v.words)) {
		return false
	}
	v.words = append(v.words, word)
	return true
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns a copy of all words in first-seen order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Contains reports whether word was seen during training.
func (v *Vocabulary) Contains(word string) bool {
	return word != "" && v.index.Get(patricia.Prefix(word)) != nil
}

// WithPrefix returns every word starting with prefix, in first-seen order.
func (v *Vocabulary) WithPrefix(prefix string) []string {
	if prefix == "" {
		return v.Words()
	}

	var positions []int
	err := v.index.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return nil
	}

	sort.Ints(positions)
	out := make([]string, len(positions))
	for i, pos := range positions {
		out[i] = v.words[pos]
	}
	return out
}
