package ngram

import (
	"reflect"
	"testing"
)

func TestVocabulary(t *testing.T) {
	v := newVocabulary()
	for _, w := range []string{"there", "the", "cat", "then", "the", "car", "a"} {
		v.add(w)
	}

	if got, want := v.Words(), []string{"there", "the", "cat", "then", "car", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
	if v.Len() != 6 {
		t.Errorf("Len() = %d, want 6", v.Len())
	}

	tests := []struct {
		prefix   string
		expected []string
	}{
		{"th", []string{"there", "the", "then"}},
		{"the", []string{"there", "the", "then"}},
		{"ther", []string{"there"}},
		{"ca", []string{"cat", "car"}},
		{"a", []string{"a"}},
		{"x", []string{}},
		{"thereafter", []string{}},
	}
	for _, tt := range tests {
		got := v.WithPrefix(tt.prefix)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("WithPrefix(%q) = %q, want %q", tt.prefix, got, tt.expected)
		}
	}

	for word, want := range map[string]bool{"the": true, "th": false, "car": true, "": false} {
		if got := v.Contains(word); got != want {
			t.Errorf("Contains(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestVocabularyWordsIsACopy(t *testing.T) {
	v := newVocabulary()
	v.add("one")
	words := v.Words()
	words[0] = "changed"
	if v.Words()[0] != "one" {
		t.Error("mutating Words() result changed the vocabulary")
	}
}

func TestEmptyVocabulary(t *testing.T) {
	v := newVocabulary()
	if got := v.WithPrefix("a"); len(got) != 0 {
		t.Errorf("WithPrefix on empty vocabulary = %q", got)
	}
	if got := v.WithPrefix(""); len(got) != 0 {
		t.Errorf("WithPrefix(\"\") on empty vocabulary = %q", got)
	}
}
