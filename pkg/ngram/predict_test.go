package ngram

import (
	"reflect"
	"strings"
	"testing"
)

func words(predictions []Prediction) []string {
	out := make([]string, len(predictions))
	for i, p := range predictions {
		out[i] = p.Word
	}
	return out
}

func TestPredictTopWords(t *testing.T) {
	m := mustModel(t, catCorpus, 3)

	tests := []struct {
		prefix   string
		k        int
		expected []string
	}{
		{"ca", 5, []string{"cat"}},
		{"CA", 5, []string{"cat"}},
		{"t", 5, []string{"the"}},
		{"z", 5, []string{}},
		{"cat", 5, []string{"cat"}},
		{"cats", 5, []string{}},
		// sat, mat and ran score the same and keep their first-seen order
		{"", 10, []string{"the", "cat", "on", "sat", "mat", "ran"}},
		{"", 4, []string{"the", "cat", "on", "sat"}},
		{"", 0, []string{"the", "cat", "on", "sat", "mat", "ran"}},
	}

	for _, tt := range tests {
		got := m.PredictTopWords(tt.prefix, tt.k)
		if !reflect.DeepEqual(words(got), tt.expected) {
			t.Errorf("PredictTopWords(%q, %d) = %q, want %q", tt.prefix, tt.k, words(got), tt.expected)
		}
	}
}

func TestPredictTopWordsScenario(t *testing.T) {
	m := mustModel(t, catCorpus, 3)

	got := m.PredictTopWords("ca", 5)
	found := false
	for _, p := range got {
		switch p.Word {
		case "cat":
			found = true
			if p.Score <= 0 {
				t.Errorf("score for cat = %v, want > 0", p.Score)
			}
		case "sat", "mat":
			t.Errorf("PredictTopWords(\"ca\") returned %q", p.Word)
		}
	}
	if !found {
		t.Errorf("PredictTopWords(\"ca\") = %v, want it to include cat", got)
	}

	if got := m.PredictTopWords("z", 5); len(got) != 0 {
		t.Errorf("PredictTopWords(\"z\") = %v, want empty", got)
	}
}

func TestPredictTopWordsProperties(t *testing.T) {
	text := `It was the best of times, it was the worst of times, it was the age of
	wisdom, it was the age of foolishness, it was the epoch of belief, it was the
	epoch of incredulity, it was the season of Light, it was the season of Darkness.`

	for order := 1; order <= 5; order++ {
		m := mustModel(t, text, order)
		for _, prefix := range []string{"", "w", "Wa", "th", "ep", "s", "of", "q"} {
			got := m.PredictTopWords(prefix, 10)
			if len(got) > 10 {
				t.Fatalf("order %d prefix %q: %d results, want at most 10", order, prefix, len(got))
			}
			lower := strings.ToLower(prefix)
			for i, p := range got {
				if !strings.HasPrefix(p.Word, lower) {
					t.Errorf("order %d prefix %q: %q does not start with the prefix", order, prefix, p.Word)
				}
				if want := m.WordScore(lower, p.Word); p.Score != want {
					t.Errorf("order %d prefix %q: score %v for %q, WordScore says %v", order, prefix, p.Score, p.Word, want)
				}
				if i > 0 && got[i-1].Score < p.Score {
					t.Errorf("order %d prefix %q: scores not descending at %d", order, prefix, i)
				}
			}
		}
	}
}

func TestPredictTopWordsEmptyPrefixRanksVocabulary(t *testing.T) {
	m := mustModel(t, catCorpus, 3)

	all := m.PredictTopWords("", m.Vocabulary().Len())
	if len(all) != m.Vocabulary().Len() {
		t.Fatalf("got %d predictions, want the whole vocabulary (%d)", len(all), m.Vocabulary().Len())
	}
	for _, p := range all {
		if want := m.WordScore("", p.Word); !almostEqual(p.Score, want) {
			t.Errorf("score for %q = %v, want WordScore(\"\", word) = %v", p.Word, p.Score, want)
		}
	}
}

func TestPredictTopWordsDeterministic(t *testing.T) {
	text := "ab ac ad ae af ag ah ai aj ak al am an ao ap"
	first := mustModel(t, text, 2).PredictTopWords("a", 20)

	for i := 0; i < 5; i++ {
		again := mustModel(t, text, 2).PredictTopWords("a", 20)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: %v, want %v", i, words(again), words(first))
		}
	}

	// every candidate ties, so first-seen order decides
	want := strings.Fields(text)
	if !reflect.DeepEqual(words(first), want) {
		t.Errorf("tie order = %q, want %q", words(first), want)
	}
}
