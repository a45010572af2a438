package suggest

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	prefix string
	limit  int
}

// ResultCache is a bounded LRU map from (lowercase prefix, limit) to the
// ranked suggestions computed for it. It is safe for concurrent use.
type ResultCache struct {
	lru        *lru.Cache[cacheKey, []Suggestion]
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
}

// NewResultCache creates a cache holding at most maxEntries results.
// A size of zero or less disables caching.
func NewResultCache(maxEntries int) *ResultCache {
	rc := &ResultCache{maxEntries: maxEntries}
	if maxEntries <= 0 {
		return rc
	}
	cache, err := lru.NewWithEvict(maxEntries, func(key cacheKey, _ []Suggestion) {
		log.Debugf("Evicted '%d:%s' from result cache", key.limit, key.prefix)
	})
	if err != nil {
		log.Warnf("Result cache disabled: %v", err)
		return rc
	}
	rc.lru = cache
	return rc
}

// Get returns the cached suggestions. Callers must not modify them.
func (rc *ResultCache) Get(lowerPrefix string, limit int) ([]Suggestion, bool) {
	if rc.lru == nil {
		rc.misses.Add(1)
		return nil, false
	}
	results, ok := rc.lru.Get(cacheKey{lowerPrefix, limit})
	if !ok {
		rc.misses.Add(1)
		return nil, false
	}
	rc.hits.Add(1)
	return results, true
}

// Put stores results, evicting the least recently used entry when full.
func (rc *ResultCache) Put(lowerPrefix string, limit int, results []Suggestion) {
	if rc.lru == nil {
		return
	}
	rc.lru.Add(cacheKey{lowerPrefix, limit}, results)
}

// Len returns the number of cached results.
func (rc *ResultCache) Len() int {
	if rc.lru == nil {
		return 0
	}
	return rc.lru.Len()
}

// Stats reports size and hit counters.
func (rc *ResultCache) Stats() map[string]int {
	return map[string]int{
		"cacheEntries": rc.Len(),
		"maxCache":     rc.maxEntries,
		"cacheHits":    int(rc.hits.Load()),
		"cacheMisses":  int(rc.misses.Load()),
	}
}
