package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#907aa9", Dark: "#c4a7e7"})
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})
)

// FormatSuggestion renders one ranked line of REPL output.
func FormatSuggestion(rank int, s suggest.Suggestion) string {
	word := wordStyle.Render(fmt.Sprintf("%-24s", s.Word))
	score := scoreStyle.Render(utils.FormatScore(s.Score))
	freq := dimStyle.Render("freq: " + utils.FormatWithCommas(s.Frequency))
	return fmt.Sprintf("%2d. %s %s  %s", rank, word, score, freq)
}

// FormatSuggestions renders a header and one line per suggestion.
func FormatSuggestions(prefix string, suggestions []suggest.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d suggestions for prefix '%s':\n", len(suggestions), prefix)
	for i, s := range suggestions {
		b.WriteString(FormatSuggestion(i+1, s))
		b.WriteByte('\n')
	}
	return b.String()
}
