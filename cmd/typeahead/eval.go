package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/typeahead/internal/session"
	"github.com/bastiangx/typeahead/pkg/corpus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		file   string
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "eval [text]",
		Short: "Auto-type a text and report how many keys the suggestions save",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if file != "" {
				var err error
				if text, err = corpus.Load(file); err != nil {
					return fmt.Errorf("failed to load text: %w", err)
				}
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to evaluate, pass a text or --file")
			}
			if format != "text" && format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q, want text, json or yaml", format)
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.config.Session.Suggestions
			}

			completer, err := a.loadCompleter()
			if err != nil {
				return err
			}
			return writeScores(cmd.OutOrStdout(), format, session.Simulate(completer, text, limit))
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the text from a file")
	cmd.Flags().IntVar(&limit, "limit", 0, "Suggestions shown per keystroke (default from [session] suggestions)")
	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, json or yaml")
	return cmd
}

func writeScores(w io.Writer, format string, sc session.Scores) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sc)
	default:
		printFinalScores(w, sc)
		return nil
	}
}
