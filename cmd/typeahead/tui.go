package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/internal/session"
	"github.com/bastiangx/typeahead/internal/tui"
	"github.com/bastiangx/typeahead/pkg/corpus"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTuiCmd(a *app) *cobra.Command {
	var (
		textPath string
		auto     bool
		delay    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Type with live suggestions and keystroke scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("text") {
				textPath = a.config.Session.TextPath
			}
			if !cmd.Flags().Changed("delay") {
				delay = time.Duration(a.config.Session.DelayMs) * time.Millisecond
			}

			text := ""
			if textPath != "" {
				var err error
				if text, err = corpus.Load(textPath); err != nil {
					return fmt.Errorf("failed to load text: %w", err)
				}
			}
			if auto && text == "" {
				return errors.New("auto mode needs a text, set --text or [session] text_path")
			}

			completer, err := a.loadCompleter()
			if err != nil {
				return err
			}

			// the alt screen owns the terminal while the program runs
			if a.debug {
				logPath := filepath.Join(os.TempDir(), "typeahead-tui.log")
				if f, err := os.Create(logPath); err == nil {
					defer f.Close()
					logger.SetOutput(f)
				}
			} else {
				logger.SetOutput(io.Discard)
			}

			s := session.New(completer, a.config.Session.Suggestions)
			var model *tui.Model
			if auto {
				model = tui.NewAuto(s, text, delay)
			} else {
				model = tui.New(s, text)
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, runErr := p.Run()

			// interrupted programs still report the word in progress
			s.Finalize()
			logger.SetOutput(os.Stderr)
			printFinalScores(cmd.OutOrStdout(), s.Scores())

			if runErr != nil {
				return fmt.Errorf("failed to run TUI: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&textPath, "text", "", "Reference text file to type (default from [session] text_path)")
	cmd.Flags().BoolVar(&auto, "auto", false, "Type the reference text automatically")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Delay between automatic keys (default from [session] delay_ms)")
	return cmd
}

func printFinalScores(w io.Writer, sc session.Scores) {
	fmt.Fprintln(w, "\n========== FINAL RESULTS ==========")
	fmt.Fprintf(w, "Letter Keys: %d\n", sc.LetterKeys)
	fmt.Fprintf(w, "Tab Keys: %d\n", sc.TabKeys)
	fmt.Fprintf(w, "Avg Letters/Word: %.2f\n", sc.AvgLettersPerWord)
	fmt.Fprintf(w, "Avg Tabs/Word: %.2f\n", sc.AvgTabsPerWord)
}
