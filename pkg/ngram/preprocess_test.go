package ngram

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello world"},
		{"  leading and trailing  ", "leading and trailing"},
		{"tabs\tand\nnewlines\r\n", "tabs and newlines"},
		{"don't stop", "dont stop"},
		{"a , b", "a b"},
		{"numbers 123 go", "numbers go"},
		{"café naïve", "caf nave"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPreprocess(t *testing.T) {
	c := Preprocess("The cat. The DOG!", 2)

	wantTokens := []string{"^", "^", "the", "cat", "the", "dog", "$"}
	if !reflect.DeepEqual(c.Tokens, wantTokens) {
		t.Errorf("Tokens = %q, want %q", c.Tokens, wantTokens)
	}

	// markers are rendered as the boundary symbol
	if want := "    the cat the dog  "; c.Stream != want {
		t.Errorf("Stream = %q, want %q", c.Stream, want)
	}

	if got, want := c.Vocabulary.Words(), []string{"the", "cat", "dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary = %q, want %q", got, want)
	}

	wantFreq := map[string]int{"^": 2, "the": 2, "cat": 1, "dog": 1, "$": 1}
	if !reflect.DeepEqual(c.Frequency, wantFreq) {
		t.Errorf("Frequency = %v, want %v", c.Frequency, wantFreq)
	}
}

func TestPreprocessEmpty(t *testing.T) {
	c := Preprocess("   ", 3)
	if len(c.Tokens) != 0 || c.Stream != "" || c.Vocabulary.Len() != 0 {
		t.Errorf("Preprocess of blank text = %+v, want empty corpus", c)
	}
}

func TestFold(t *testing.T) {
	tests := map[byte]byte{
		'a': 'a',
		'z': 'z',
		'Q': 'q',
		' ': ' ',
		'^': ' ',
		'$': ' ',
		'7': ' ',
		0xC3: ' ',
	}
	for in, want := range tests {
		if got := fold(in); got != want {
			t.Errorf("fold(%q) = %q, want %q", in, got, want)
		}
	}

	if got := foldString("Ab-c"); got != "ab c" {
		t.Errorf("foldString = %q, want %q", got, "ab c")
	}
}
