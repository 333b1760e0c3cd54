// ABOUTME: Structured logging with verbosity control and level-based output
// ABOUTME: Supports file output so logs never write over the terminal UI

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	verbose           = false
	output  io.Writer = os.Stderr
	logFile *os.File
)

// SetVerbose enables or disables verbose (DEBUG) logging
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns current verbose setting
func IsVerbose() bool {
	return verbose
}

// SetOutput sets the output destination for logs
func SetOutput(w io.Writer) {
	if w == nil {
		output = os.Stderr
		log.SetOutput(os.Stderr)
	} else {
		output = w
		log.SetOutput(w)
	}
}

// SetFile redirects log output to the given file path. The terminal UI
// owns stderr while running, so the TUI entry point calls this before
// starting the program.
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	SetOutput(f)
	return nil
}

// Close closes the log file if one was opened via SetFile.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Debug logs at DEBUG level (only shown when verbose)
func Debug(format string, args ...interface{}) {
	if verbose {
		msg := fmt.Sprintf(format, args...)
		log.Printf("[DEBUG] %s", msg)
	}
}

// Info logs at INFO level (always shown)
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[INFO] %s", msg)
}

// Warn logs at WARN level (always shown)
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[WARN] %s", msg)
}

// Error logs at ERROR level (always shown)
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[ERROR] %s", msg)
}
