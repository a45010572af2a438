package session

import (
	"slices"
	"strings"

	"github.com/bastiangx/typeahead/pkg/suggest"
)

type autoPhase int

const (
	phaseType autoPhase = iota
	phaseTab
	phaseEnter
	phaseSpace
)

// AutoTyper replays a text into a session one key at a time. Each word is
// typed letter by letter until it shows up among the suggestions; it is then
// selected with tab presses and accepted with enter. A space follows every
// word.
type AutoTyper struct {
	words    [][]rune
	word     int
	typed    int
	tabsLeft int
	phase    autoPhase
}

// NewAutoTyper prepares the whitespace separated words of text.
func NewAutoTyper(text string) *AutoTyper {
	fields := strings.Fields(text)
	words := make([][]rune, len(fields))
	for i, f := range fields {
		words[i] = []rune(f)
	}
	return &AutoTyper{words: words}
}

// Done reports whether every word was typed.
func (a *AutoTyper) Done() bool {
	return a.word >= len(a.words)
}

// Step presses the next key on s and reports whether keys remain.
func (a *AutoTyper) Step(s *Session) bool {
	if a.Done() {
		return false
	}
	target := a.words[a.word]

	switch a.phase {
	case phaseType:
		s.Insert(target[a.typed])
		a.typed++
		if a.typed == len(target) {
			a.phase = phaseSpace
			break
		}
		if idx := slices.Index(s.Suggestions(), string(target)); idx >= 0 {
			a.tabsLeft = idx
			a.phase = phaseEnter
			if idx > 0 {
				a.phase = phaseTab
			}
		}
	case phaseTab:
		s.Tab()
		a.tabsLeft--
		if a.tabsLeft == 0 {
			a.phase = phaseEnter
		}
	case phaseEnter:
		s.Enter()
		a.phase = phaseSpace
	case phaseSpace:
		s.Insert(' ')
		a.word++
		a.typed = 0
		a.phase = phaseType
	}
	return !a.Done()
}

// Simulate types text into a fresh session with the auto typer and returns
// the final scores.
func Simulate(completer suggest.ICompleter, text string, limit int) Scores {
	s := New(completer, limit)
	auto := NewAutoTyper(text)
	for auto.Step(s) {
	}
	s.Finalize()
	return s.Scores()
}
