// Package session tracks a typing session against a completer and scores
// how many keystrokes the suggestions saved.
package session

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
)

// WordStat records one finished word: Typed letter keys pressed for it and
// Length letters in the final word.
type WordStat struct {
	Typed  int
	Length int
}

// Session is the editing state of one user. It is not safe for concurrent
// use; front ends own one Session each.
type Session struct {
	completer suggest.ICompleter
	limit     int
	logger    *log.Logger

	input  []rune
	cursor int

	suggestions []string
	selected    int

	keystrokes int
	pending    bool
	words      []WordStat
	tabs       int
}

// New creates a session asking completer for limit suggestions per word.
// The suggestion list starts out filled for the empty prefix.
func New(completer suggest.ICompleter, limit int) *Session {
	s := &Session{
		completer: completer,
		limit:     limit,
		logger:    logger.New("session"),
	}
	s.refresh()
	return s
}

// Input returns the text typed so far.
func (s *Session) Input() string {
	return string(s.input)
}

// Cursor returns the cursor position in runes.
func (s *Session) Cursor() int {
	return s.cursor
}

// Suggestions returns the current suggestion list.
func (s *Session) Suggestions() []string {
	return s.suggestions
}

// Selected returns the index of the highlighted suggestion.
func (s *Session) Selected() int {
	return s.selected
}

// Words returns the finished word statistics.
func (s *Session) Words() []WordStat {
	return slices.Clone(s.words)
}

// Insert types r at the cursor. Letters count as keystrokes for the current
// word, a space finishes it.
func (s *Session) Insert(r rune) {
	if r == ' ' {
		s.Finalize()
	}
	s.input = slices.Insert(s.input, s.cursor, r)
	s.cursor++
	if unicode.IsLetter(r) {
		s.keystrokes++
		s.pending = true
	}
	s.refresh()
}

// Backspace deletes the rune before the cursor.
func (s *Session) Backspace() {
	if s.cursor == 0 {
		return
	}
	deleted := s.input[s.cursor-1]
	s.input = slices.Delete(s.input, s.cursor-1, s.cursor)
	s.cursor--
	if unicode.IsLetter(deleted) && s.keystrokes > 0 {
		s.keystrokes--
	}
	s.refresh()
}

// Left moves the cursor one rune left.
func (s *Session) Left() {
	if s.cursor > 0 {
		s.cursor--
		s.refresh()
	}
}

// Right moves the cursor one rune right.
func (s *Session) Right() {
	if s.cursor < len(s.input) {
		s.cursor++
		s.refresh()
	}
}

// Tab highlights the next suggestion. Every press is counted, even with no
// suggestions to cycle through.
func (s *Session) Tab() {
	s.tabs++
	if len(s.suggestions) > 0 {
		s.selected = (s.selected + 1) % len(s.suggestions)
	}
}

// Enter replaces the word at the cursor with the highlighted suggestion, if
// any, and finishes it.
func (s *Session) Enter() {
	if s.selected < len(s.suggestions) {
		s.replaceCurrentWord(s.suggestions[s.selected])
		s.pending = true
	}
	s.Finalize()
	s.suggestions = nil
	s.selected = 0
}

// Finalize records the word at the cursor if it was worked on since the last
// call. Front ends call it on every exit path so a word in progress is
// counted.
func (s *Session) Finalize() {
	if !s.pending {
		s.keystrokes = 0
		return
	}
	word := s.currentWord()
	length := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			length++
		}
	}
	if length > 0 {
		s.words = append(s.words, WordStat{Typed: s.keystrokes, Length: length})
		s.logger.Debugf("Finished '%s' with %d of %d letters typed", string(word), s.keystrokes, length)
	}
	s.keystrokes = 0
	s.pending = false
}

// Scores returns the running totals.
func (s *Session) Scores() Scores {
	var sc Scores
	letters := 0
	for _, w := range s.words {
		sc.LetterKeys += w.Typed
		letters += w.Length
	}
	sc.TabKeys = s.tabs
	if letters > 0 {
		sc.AvgLettersPerWord = float64(sc.LetterKeys) / float64(letters)
	}
	if len(s.words) > 0 {
		sc.AvgTabsPerWord = float64(s.tabs) / float64(len(s.words))
	}
	return sc
}

func (s *Session) wordStart() int {
	start := s.cursor
	for start > 0 && !unicode.IsSpace(s.input[start-1]) {
		start--
	}
	return start
}

func (s *Session) currentWord() []rune {
	return s.input[s.wordStart():s.cursor]
}

func (s *Session) replaceCurrentWord(word string) {
	start := s.wordStart()
	replacement := []rune(word)
	s.input = slices.Concat(s.input[:start], replacement, s.input[s.cursor:])
	s.cursor = start + len(replacement)
}

func (s *Session) refresh() {
	results := s.completer.Complete(string(s.currentWord()), s.limit)
	s.suggestions = make([]string, len(results))
	for i, r := range results {
		s.suggestions[i] = r.Word
	}
	s.selected = 0
}

// Scores summarizes a session.
type Scores struct {
	LetterKeys        int     `json:"letter_keys" yaml:"letter_keys"`
	TabKeys           int     `json:"tab_keys" yaml:"tab_keys"`
	AvgLettersPerWord float64 `json:"avg_letters_per_word" yaml:"avg_letters_per_word"`
	AvgTabsPerWord    float64 `json:"avg_tabs_per_word" yaml:"avg_tabs_per_word"`
}

func (sc Scores) String() string {
	return fmt.Sprintf("Letter Keys: %d | Tab Keys: %d | Avg Letters/Word: %.2f | Avg Tabs/Word: %.2f",
		sc.LetterKeys, sc.TabKeys, sc.AvgLettersPerWord, sc.AvgTabsPerWord)
}
