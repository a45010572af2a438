package suggest

import (
	"time"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/ngram"
	"github.com/charmbracelet/log"
)

// DefaultCacheSize is the number of prefix results kept by NewCompleter.
const DefaultCacheSize = 4096

// Completer answers prefix queries from a trained n-gram model.
// The model never changes after training, so cached results stay valid for
// the life of the Completer and concurrent use is safe.
type Completer struct {
	model        *ngram.Model
	cache        *ResultCache
	defaultLimit int
}

// NewCompleter wraps model with a result cache of cacheSize entries.
func NewCompleter(model *ngram.Model, cacheSize int) *Completer {
	return &Completer{
		model:        model,
		cache:        NewResultCache(cacheSize),
		defaultLimit: ngram.DefaultTopK,
	}
}

// SetDefaultLimit changes the limit used when Complete is called with 0.
func (c *Completer) SetDefaultLimit(limit int) {
	if limit > 0 {
		c.defaultLimit = limit
	}
}

// Model returns the wrapped model.
func (c *Completer) Model() *ngram.Model {
	return c.model
}

// Complete returns ranked suggestions for prefix.
// The ranking is done on the lowercase prefix; the returned words carry the
// capitals the user typed, "Ca" gives "Cat" and "CA" gives "CAT".
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		limit = c.defaultLimit
	}

	lowerPrefix, capitals := utils.ProcessCapitals(prefix)
	defer utils.ReleaseCapitals(capitals)

	results, ok := c.cache.Get(lowerPrefix, limit)
	if !ok {
		start := time.Now()
		predictions := c.model.PredictTopWords(lowerPrefix, limit)
		results = make([]Suggestion, len(predictions))
		for i, p := range predictions {
			results[i] = Suggestion{
				Word:      p.Word,
				Score:     p.Score,
				Frequency: c.model.Frequency(p.Word),
			}
		}
		c.cache.Put(lowerPrefix, limit, results)
		log.Debugf("Ranked %d words for '%s' in [ %v ]", len(results), lowerPrefix, time.Since(start))
	}

	suggestions := make([]Suggestion, len(results))
	copy(suggestions, results)
	if capitals != nil {
		for i := range suggestions {
			suggestions[i].Word = utils.ApplyCapitals(suggestions[i].Word, capitals)
		}
	}
	return suggestions
}

// Stats merges model size information with the cache counters.
func (c *Completer) Stats() map[string]int {
	modelStats := c.model.Stats()
	stats := map[string]int{
		"order":      modelStats.Order,
		"totalWords": modelStats.Vocabulary,
		"tokens":     modelStats.Tokens,
		"streamLen":  modelStats.StreamLen,
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
