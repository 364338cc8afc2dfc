// Package output provides the webgen CLI's terminal surface: the
// logger, the lipgloss palette, the spinner wrapper, and the generation
// summary tree.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger. Quiet by default; SetupLogging switches
// it to debug once the verbose flag is parsed.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// SetupLogging configures the logger from the verbose flag. Verbose
// runs also report timestamps and callers, since they exist to diagnose
// the pipeline.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
	})
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// Print writes directly to stdout, bypassing log levels. Generation
// summaries go through here so they survive piping and --verbose alike.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println is Print with a trailing newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
