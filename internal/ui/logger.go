package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger provides leveled, color-coded console output on stderr.
// It is separate from the diagnostic file log: this is what the user
// sees, the file log is what gets read after the fact.
type Logger struct {
	Verbose bool
	Quiet   bool
}

// NewLogger creates a new logger. noColor disables ANSI colors
// globally.
func NewLogger(verbose, quiet, noColor bool) *Logger {
	if noColor {
		color.NoColor = true
	}
	return &Logger{
		Verbose: verbose,
		Quiet:   quiet,
	}
}

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
)

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.Quiet {
		return
	}
	infoColor.Fprintf(os.Stderr, "[INFO] %s\n", fmt.Sprintf(format, args...))
}

// Success logs a success message
func (l *Logger) Success(format string, args ...interface{}) {
	if l.Quiet {
		return
	}
	successColor.Fprintf(os.Stderr, "[SUCCESS] %s\n", fmt.Sprintf(format, args...))
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	warningColor.Fprintf(os.Stderr, "[WARNING] %s\n", fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "[ERROR] %s\n", fmt.Sprintf(format, args...))
}

// Debug logs a debug message (only if verbose is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	debugColor.Fprintf(os.Stderr, "[DEBUG] %s\n", fmt.Sprintf(format, args...))
}
