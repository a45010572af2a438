// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var output io.Writer = os.Stderr

// New creates a new default charm log that respects the global log level.
// Output goes to stderr so stdout stays free for the IPC stream.
func New(prefix string) *log.Logger {
	return NewWithConfig(output, prefix, log.GetLevel(), false, log.GetLevel() == log.DebugLevel, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup configures the global logger. Debug mode turns on timestamps and
// debug output; otherwise only warnings and errors are shown.
func Setup(debug bool) {
	SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}

// SetOutput redirects the global logger and loggers created afterwards.
// Full screen front ends point it away from the terminal.
func SetOutput(w io.Writer) {
	output = w
	log.SetOutput(w)
}
