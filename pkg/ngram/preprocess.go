package ngram

import (
	"strings"
	"unicode"
)

// Corpus is the normalized form of the training text.
type Corpus struct {
	// Tokens holds sentence markers and words in stream order.
	Tokens []string
	// Stream is the character stream the model is trained on.
	Stream     string
	Vocabulary *Vocabulary
	// Frequency counts every token, markers included.
	Frequency map[string]int
}

// Normalize lowercases text, drops everything that is neither an ASCII letter
// nor whitespace, and collapses whitespace runs into single spaces.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := false
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
			fallthrough
		case r >= 'a' && r <= 'z':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		}
	}
	return b.String()
}

// Preprocess turns raw text into the token list, character stream and word
// tables for a model of the given order.
// Markers are written to the stream as the boundary symbol, so probabilities
// for contexts that contain a boundary differ from a stream carrying literal
// '^' and '$' characters.
func Preprocess(text string, order int) *Corpus {
	c := &Corpus{
		Vocabulary: newVocabulary(),
		Frequency:  make(map[string]int),
	}

	// Sentence terminators do not survive Normalize, so the normalized text
	// is a single sentence.
	sentence := Normalize(text)
	words := strings.Fields(sentence)
	if len(words) > 0 {
		for i := 0; i < order; i++ {
			c.Tokens = append(c.Tokens, StartMarker)
		}
		c.Tokens = append(c.Tokens, words...)
		c.Tokens = append(c.Tokens, EndMarker)
	}

	var stream strings.Builder
	for i, tok := range c.Tokens {
		c.Frequency[tok]++
		if i > 0 {
			stream.WriteByte(Boundary)
		}
		if isMarker(tok) {
			stream.WriteByte(Boundary)
			continue
		}
		c.Vocabulary.add(tok)
		stream.WriteString(tok)
	}
	c.Stream = stream.String()
	return c
}

func isMarker(tok string) bool {
	return tok == StartMarker || tok == EndMarker
}

// fold maps any byte onto the model alphabet: letters are lowered and
// everything else becomes the boundary symbol.
func fold(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c
	case c >= 'A' && c <= 'Z':
		return c + 'a' - 'A'
	default:
		return Boundary
	}
}

// foldString applies fold to every byte of s.
func foldString(s string) string {
	for i := 0; i < len(s); i++ {
		if fold(s[i]) != s[i] {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = fold(b[j])
			}
			return string(b)
		}
	}
	return s
}
