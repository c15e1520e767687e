// Package logger configures charmbracelet/log for the CLI and the IPC server.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Setup configures the package-level charm logger.
// Debug mode adds timestamps and lowers the level to Debug; otherwise only warnings and errors show.
func Setup(w io.Writer, debug bool) {
	log.SetDefault(NewWithConfig(w, "", levelFor(debug), false, debug, log.TextFormatter))
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

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}
