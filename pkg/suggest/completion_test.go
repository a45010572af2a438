package suggest

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/bastiangx/typeahead/pkg/ngram"
	"github.com/charmbracelet/log"
)

const catCorpus = "the cat sat on the mat the cat ran"

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestCompleter(t *testing.T, cacheSize int) *Completer {
	t.Helper()
	model, err := ngram.New(catCorpus, 3)
	if err != nil {
		t.Fatalf("ngram.New failed: %v", err)
	}
	return NewCompleter(model, cacheSize)
}

func wordsOf(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Word
	}
	return out
}

func TestComplete(t *testing.T) {
	c := newTestCompleter(t, DefaultCacheSize)

	tests := []struct {
		prefix   string
		limit    int
		expected []string
	}{
		{"ca", 5, []string{"cat"}},
		{"Ca", 5, []string{"Cat"}},
		{"CA", 5, []string{"CAT"}},
		{"tH", 5, []string{"tHe"}},
		{"z", 5, []string{}},
		{"", 3, []string{"the", "cat", "on"}},
		{"", 0, []string{"the", "cat", "on", "sat", "mat", "ran"}},
	}

	for _, tt := range tests {
		got := c.Complete(tt.prefix, tt.limit)
		if !reflect.DeepEqual(wordsOf(got), tt.expected) {
			t.Errorf("Complete(%q, %d) = %q, want %q", tt.prefix, tt.limit, wordsOf(got), tt.expected)
		}
	}
}

func TestCompleteCarriesScoreAndFrequency(t *testing.T) {
	c := newTestCompleter(t, DefaultCacheSize)

	got := c.Complete("Th", 1)
	if len(got) != 1 {
		t.Fatalf("Complete(\"Th\", 1) returned %d suggestions", len(got))
	}
	if got[0].Frequency != 3 {
		t.Errorf("frequency of the = %d, want 3", got[0].Frequency)
	}
	if want := c.Model().WordScore("th", "the"); got[0].Score != want {
		t.Errorf("score = %v, want %v", got[0].Score, want)
	}
}

func TestCompleteCapitalsDoNotLeakIntoCache(t *testing.T) {
	c := newTestCompleter(t, DefaultCacheSize)

	if got := wordsOf(c.Complete("CA", 5)); !reflect.DeepEqual(got, []string{"CAT"}) {
		t.Fatalf("Complete(\"CA\") = %q", got)
	}
	if got := wordsOf(c.Complete("ca", 5)); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("Complete(\"ca\") after \"CA\" = %q, want lowercase", got)
	}

	stats := c.Stats()
	if stats["cacheHits"] != 1 || stats["cacheEntries"] != 1 {
		t.Errorf("cache stats = %v, want one entry hit once", stats)
	}
}

func TestCompleteDefaultLimit(t *testing.T) {
	c := newTestCompleter(t, 0)
	c.SetDefaultLimit(2)
	if got := c.Complete("", 0); len(got) != 2 {
		t.Errorf("Complete with default limit 2 returned %d", len(got))
	}
	c.SetDefaultLimit(-1)
	if got := c.Complete("", 0); len(got) != 2 {
		t.Errorf("negative default limit must be ignored, got %d results", len(got))
	}
}

func TestStats(t *testing.T) {
	c := newTestCompleter(t, 8)
	stats := c.Stats()

	expected := map[string]int{
		"order":      3,
		"totalWords": 6,
		"tokens":     13,
		"maxCache":   8,
	}
	for key, want := range expected {
		if stats[key] != want {
			t.Errorf("Stats()[%q] = %d, want %d", key, stats[key], want)
		}
	}
}

func TestResultCacheEvictsLeastRecentlyUsed(t *testing.T) {
	rc := NewResultCache(2)
	rc.Put("a", 5, []Suggestion{{Word: "a"}})
	rc.Put("b", 5, []Suggestion{{Word: "b"}})

	if _, ok := rc.Get("a", 5); !ok {
		t.Fatal("a should be cached")
	}
	rc.Put("c", 5, []Suggestion{{Word: "c"}})

	if _, ok := rc.Get("b", 5); ok {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, ok := rc.Get(key, 5); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
	if rc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rc.Len())
	}
}

func TestResultCacheKeysOnLimit(t *testing.T) {
	rc := NewResultCache(4)
	rc.Put("ca", 1, []Suggestion{{Word: "cat"}})
	if _, ok := rc.Get("ca", 2); ok {
		t.Error("a different limit must miss")
	}
}

func TestResultCacheDisabled(t *testing.T) {
	rc := NewResultCache(0)
	rc.Put("a", 1, []Suggestion{{Word: "a"}})
	if _, ok := rc.Get("a", 1); ok {
		t.Error("disabled cache returned a result")
	}
}

func BenchmarkComplete(b *testing.B) {
	model, err := ngram.New(catCorpus, 3)
	if err != nil {
		b.Fatal(err)
	}
	prefixes := []string{"t", "th", "c", "ca", "s", "m", "r", "o"}

	for _, cacheSize := range []int{0, DefaultCacheSize} {
		b.Run(fmt.Sprintf("cache_%d", cacheSize), func(b *testing.B) {
			c := NewCompleter(model, cacheSize)
			for i := 0; i < b.N; i++ {
				c.Complete(prefixes[i%len(prefixes)], 5)
			}
		})
	}
}
