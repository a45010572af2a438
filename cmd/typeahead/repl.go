package main

import (
	"errors"
	"io"

	"github.com/bastiangx/typeahead/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	var (
		limit     int
		minPrefix int
		maxPrefix int
		noFilter  bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Type prefixes and see ranked suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sigHandler()
			defaults := a.config.CLI
			if !cmd.Flags().Changed("limit") {
				limit = defaults.DefaultLimit
			}
			if !cmd.Flags().Changed("prmin") {
				minPrefix = defaults.DefaultMinLen
			}
			if !cmd.Flags().Changed("prmax") {
				maxPrefix = defaults.DefaultMaxLen
			}
			if !cmd.Flags().Changed("no-filter") {
				noFilter = defaults.DefaultNoFilter
			}

			completer, err := a.loadCompleter()
			if err != nil {
				return err
			}

			log.Debug("Input info:",
				"minPrefix", minPrefix,
				"maxPrefix", maxPrefix,
				"limit", limit,
				"noFilter", noFilter)

			handler := cli.NewInputHandler(completer, minPrefix, maxPrefix, limit, noFilter)
			if err := handler.Start(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of suggestions to return (default from config)")
	cmd.Flags().IntVar(&minPrefix, "prmin", 0, "Minimum prefix length for suggestions")
	cmd.Flags().IntVar(&maxPrefix, "prmax", 0, "Maximum prefix length for suggestions")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "Disable input filtering (DBG only)")
	return cmd
}
