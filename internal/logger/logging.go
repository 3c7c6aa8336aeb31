// Package logger provides shared constructors over charmbracelet/log so
// every package's prefixed logger has one look.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger that reports timestamps and respects
// the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Default is New without timestamps, for interactive output.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
