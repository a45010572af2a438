package ngram

import (
	"math"
	"testing"
)

func TestWordScore(t *testing.T) {
	m := mustModel(t, catCorpus, 3)

	tests := []struct {
		prefix   string
		word     string
		expected float64
	}{
		{"ca", "cat", 0.893400508619259},
		{"c", "cat", 0.7251499723043985},
		{"t", "the", 0.3616196226977718},
		{"", "the", 0.058106707916442034},
		{"", "sat", 0.013047798525220967},
		// nothing left to score: only the frequency boost remains
		{"cat", "cat", 1 + math.Log(3)/10},
		// not a completion of the prefix
		{"ca", "sat", 0},
		{"cats", "cat", 0},
	}

	for _, tt := range tests {
		got := m.WordScore(tt.prefix, tt.word)
		if !almostEqual(got, tt.expected) {
			t.Errorf("WordScore(%q, %q) = %.15f, want %.15f", tt.prefix, tt.word, got, tt.expected)
		}
	}
}

func TestWordScoreComposition(t *testing.T) {
	m := mustModel(t, catCorpus, 3)

	// "ca" -> "cat": one character scored under context "ca"
	p := m.CharProbability("ca", 't')
	want := p * (1 + math.Log(1+2)/10) * (1 / (1 + 0.1))
	if got := m.WordScore("ca", "cat"); !almostEqual(got, want) {
		t.Errorf("WordScore(\"ca\", \"cat\") = %v, want %v", got, want)
	}

	// "" -> "on": o under "", n under "o"
	want = m.CharProbability("", 'o') * m.CharProbability("o", 'n') * (1 + math.Log(2)/10) / 1.2
	if got := m.WordScore("", "on"); !almostEqual(got, want) {
		t.Errorf("WordScore(\"\", \"on\") = %v, want %v", got, want)
	}
}

func TestWordScoreLongWordStaysFinite(t *testing.T) {
	m := mustModel(t, "a", 2)

	word := ""
	for i := 0; i < 400; i++ {
		word += "z"
	}
	// every character is a rare event; the log-space sum must not turn into NaN
	got := m.WordScore("", word)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Errorf("WordScore of a long word = %v, want a finite non-negative value", got)
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		s        string
		n        int
		expected string
	}{
		{"abc", 2, "bc"},
		{"abc", 0, ""},
		{"abc", 5, "abc"},
		{"", 2, ""},
	}
	for _, tt := range tests {
		if got := suffix(tt.s, tt.n); got != tt.expected {
			t.Errorf("suffix(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.expected)
		}
	}
}
