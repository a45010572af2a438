// Package tui is the full screen typing front end: a bubbletea program that
// feeds keys into a session and shows suggestions, the reference text, the
// input line and live scores.
package tui

import (
	"strings"
	"time"

	"github.com/bastiangx/typeahead/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg struct{}

// Model is the bubbletea model. Use it through a pointer so the final
// scores can be read after the program exits.
type Model struct {
	session  *session.Session
	input    textinput.Model
	text     string
	auto     *session.AutoTyper
	delay    time.Duration
	width    int
	height   int
	quitting bool
}

// New creates a model typing into s. text is shown as the reference to type.
func New(s *session.Session, text string) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "start typing..."
	input.Focus()

	m := &Model{
		session: s,
		input:   input,
		text:    text,
		width:   80,
	}
	m.sync()
	return m
}

// NewAuto creates a model that types text by itself, one key per delay.
func NewAuto(s *session.Session, text string, delay time.Duration) *Model {
	m := New(s, text)
	m.auto = session.NewAutoTyper(text)
	m.delay = delay
	return m
}

// Session returns the session the model types into.
func (m *Model) Session() *session.Session {
	return m.session
}

// Quitting reports whether the program was asked to stop.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	if m.auto != nil {
		return tea.Batch(textinput.Blink, m.tick())
	}
	return textinput.Blink
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tickMsg:
		if m.auto == nil || m.quitting {
			return m, nil
		}
		more := m.auto.Step(m.session)
		m.sync()
		if more {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if m.auto == nil {
			m.handleKey(msg)
			m.sync()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= ' ' && r <= '~' {
				m.session.Insert(r)
			}
		}
	case tea.KeySpace:
		m.session.Insert(' ')
	case tea.KeyBackspace:
		m.session.Backspace()
	case tea.KeyLeft:
		m.session.Left()
	case tea.KeyRight:
		m.session.Right()
	case tea.KeyTab:
		m.session.Tab()
	case tea.KeyEnter:
		m.session.Enter()
	}
}

// quit finalizes the word in progress before stopping the program.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.session.Finalize()
	return tea.Quit
}

func (m *Model) sync() {
	m.input.SetValue(m.session.Input())
	m.input.SetCursor(m.session.Cursor())
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	selectedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ea9a97"})
)

func (m *Model) panel(title, body string) string {
	width := max(m.width-2, 20)
	return panelStyle.Width(width - 2).Render(titleStyle.Render(title) + "\n" + body)
}

// SuggestionLine renders the suggestions with the selected one in brackets.
func (m *Model) SuggestionLine() string {
	suggestions := m.session.Suggestions()
	if len(suggestions) == 0 {
		return "No suggestions"
	}
	parts := make([]string, len(suggestions))
	for i, s := range suggestions {
		if i == m.session.Selected() {
			parts[i] = selectedStyle.Render("[" + s + "]")
		} else {
			parts[i] = s
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	help := "tab: next suggestion  enter: accept  esc: quit"
	if m.auto != nil {
		help = "auto mode  esc: quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.panel("Suggestions", m.SuggestionLine()),
		m.panel("Text Content", m.text),
		m.panel("Input", m.input.View()),
		m.panel("Scores", m.session.Scores().String()),
		help,
	)
}
