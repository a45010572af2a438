package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/corpus"
	"github.com/bastiangx/typeahead/pkg/ngram"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	AppName = "typeahead"
	gh      = "https://github.com/bastiangx/typeahead"
)

// app carries what every subcommand shares after flag parsing.
type app struct {
	configFlag string
	corpusFlag string
	orderFlag  int
	debug      bool

	config     *config.Config
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           AppName,
		Short:         "Character n-gram word prediction",
		Long:          "typeahead trains a character n-gram model on a corpus and predicts the word being typed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFlag, "config", "", "Path to a TOML config file")
	flags.StringVar(&a.corpusFlag, "corpus", "", "Training corpus file or directory (overrides [model] corpus)")
	flags.IntVar(&a.orderFlag, "order", 0, "Model order n, the characters used per prediction (overrides [model] order)")
	flags.BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")

	root.AddCommand(
		newServeCmd(a),
		newReplCmd(a),
		newTuiCmd(a),
		newEvalCmd(a),
		newHTTPCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup applies logging, then config file, then flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	logger.Setup(a.debug)

	cfg, path, err := config.LoadConfigWithPriority(a.configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("corpus") {
		cfg.Model.Corpus = a.corpusFlag
	}
	if cmd.Flags().Changed("order") {
		if a.orderFlag < 1 {
			return fmt.Errorf("order %d: %w", a.orderFlag, ngram.ErrInvalidOrder)
		}
		cfg.Model.Order = a.orderFlag
	}

	a.config = cfg
	a.configPath = path
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(path))
	return nil
}

// loadCompleter reads the corpus and trains the model behind every front end.
func (a *app) loadCompleter() (*suggest.Completer, error) {
	configDir := ""
	if a.configPath != "" {
		configDir = filepath.Dir(a.configPath)
	}
	corpusPath := utils.NewCorpusResolver(configDir).Resolve(a.config.Model.Corpus)
	log.Debugf("Using corpus at: %s", corpusPath)

	start := time.Now()
	text, err := corpus.Load(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	model, err := ngram.New(text, a.config.Model.Order)
	if err != nil {
		return nil, fmt.Errorf("failed to train model: %w", err)
	}
	log.Debugf("Model ready in [ %v ]", time.Since(start))

	completer := suggest.NewCompleter(model, suggest.DefaultCacheSize)
	completer.SetDefaultLimit(a.config.Model.TopK)
	return completer, nil
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}
