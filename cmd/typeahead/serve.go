package main

import (
	"fmt"
	"os"

	"github.com/bastiangx/typeahead/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the msgpack IPC server on stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe()
		},
	}
}

func (a *app) runServe() error {
	sigHandler()
	completer, err := a.loadCompleter()
	if err != nil {
		return err
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, a.config, a.configPath)
	showStartupInfo(completer.Stats())

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// showStartupInfo displays some basic info about the init process.
// It writes to stderr, stdout belongs to the IPC stream.
func showStartupInfo(stats map[string]int) {
	if log.GetLevel() > log.InfoLevel {
		return
	}
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " typeahead ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("order: %d, vocabulary: %d words", stats["order"], stats["totalWords"])
	log.Info("status: ready")
}
