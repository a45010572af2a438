package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/typeahead/pkg/httpapi"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newHTTPCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve predictions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.config.HTTP.Addr
			}
			return a.runHTTP(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from [http] addr)")
	return cmd
}

func (a *app) runHTTP(addr string) error {
	completer, err := a.loadCompleter()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.SetupRouter(completer, a.config),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
