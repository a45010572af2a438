// Package cli handles cmd line input and suggestions for DBG and testing the model
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing
// suggestions. It accepts many flags to control behavior such as
// minimum and maximum prefix length, suggestion limits, and filtering options.
type InputHandler struct {
	completer       suggest.ICompleter
	reader          io.Reader
	writer          io.Writer
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	requestCount    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		reader:          os.Stdin,
		writer:          os.Stdout,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// SetIO replaces stdin and stdout.
func (h *InputHandler) SetIO(r io.Reader, w io.Writer) {
	h.reader = r
	h.writer = w
}

// Start begins the interface loop.
// It prompts for input, reads a line and passes the trimmed input to
// HandleInput. The loop ends cleanly at EOF.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.writer, "typeahead CLI")
	fmt.Fprintln(h.writer, "type a prefix and press Enter to see the suggestions (Ctrl+D to exit):")

	scanner := bufio.NewScanner(h.reader)
	for {
		fmt.Fprint(h.writer, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.writer)
			return scanner.Err()
		}
		prefix := strings.TrimSpace(scanner.Text())
		if prefix == "" {
			continue
		}
		h.HandleInput(prefix)
	}
}

// HandleInput validates a single prefix's length and content, then prints
// the completer's ranked suggestions.
func (h *InputHandler) HandleInput(prefix string) {
	h.requestCount++

	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(prefix) {
			log.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	log.Debug("Processing request for", "prefix", prefix)
	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	fmt.Fprint(h.writer, FormatSuggestions(prefix, suggestions))
}

// RequestCount returns the number of prefixes handled.
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}
