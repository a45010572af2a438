package utils

import (
	"unicode"
)

// IsASCIILetter reports whether r is in a-z or A-Z.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsOnlyLetters checks if a string consists entirely of ASCII letters
func IsOnlyLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !IsASCIILetter(r) {
			return false
		}
	}
	return true
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if a prefix should be sent to the model.
// The model only knows lowercase ASCII words, so anything with digits,
// punctuation or non-ASCII letters cannot match. Repetitive strings are
// rejected as well.
func IsValidInput(s string) bool {
	if !IsOnlyLetters(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of repetitive characters
// Simple version that checks for repeated characters (e.g., "aaa", "bbb")
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}

	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
