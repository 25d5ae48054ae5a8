// Package ui prints the CLI's progress and diagnostic lines. Progress goes
// to stdout as bare lines; errors go to stderr with an "Error:" prefix so
// scripted callers can separate the two streams.
package ui

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
)

// SetVerbose enables debug output.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// Info prints a progress line.
func Info(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Success prints a completion line.
func Success(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Warning prints a non-fatal problem.
func Warning(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "Warning: "+format+"\n", args...)
}

// Error prints a failure line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// Debug prints a line only when verbose output is enabled.
func Debug(format string, args ...any) {
	if !Verbose() {
		return
	}
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
