// Copyright 2025 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead word prediction server, REPL and
typing trainer.

typeahead trains a character n-gram model on a text corpus at startup and
predicts which vocabulary word the user is typing. Every candidate word that
starts with the typed prefix is scored by the probability of its remaining
characters, its corpus frequency and its length, and the best ones are
returned.

# Usage

Start the msgpack IPC server on a corpus file or directory:

	typeahead --corpus books/

Query the model interactively:

	typeahead repl --limit 5

Practice typing a text with suggestions, or watch it type itself:

	typeahead tui --text passage.txt
	typeahead tui --text passage.txt --auto

Score how many keystrokes the suggestions save on a text:

	typeahead eval "the quick brown fox"

# Configuration

Settings live in a TOML file that is created with defaults on first run:

	[model]
	order = 3
	corpus = "corpus.txt"
	top_k = 10

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[cli]
	default_limit = 10

	[session]
	text_path = ""
	delay_ms = 150
	suggestions = 5

Flags override the file. Relative corpus paths are looked up in the working
directory, next to the executable and in the config directory.

# IPC Protocol

The server reads msgpack maps from stdin and writes msgpack maps to stdout:

	{"id": "req1", "p": "ca", "l": 5}
	{"id": "req1", "s": [{"w": "cat", "r": 1, "sc": 0.8934}], "c": 1, "t": 87}

See package server for the management actions.
*/
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	os.Exit(run(os.Stderr, os.Args[1:]))
}

// run executes the command tree and reports a failure on w.
// It returns the process exit code.
func run(w io.Writer, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		log.New(w).Error(err)
		return 1
	}
	return 0
}
