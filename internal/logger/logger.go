// Package logger prints parse and sync progress for orgsync.
//
// Debug and Info lines are only written with --verbose. Warnings, such as
// a read fault that cut a file short, are always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level orders log lines by importance.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetVerbose enables or disables Debug and Info output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether Debug and Info output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects all log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs detail useful when tracing a single parse.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs per-file and per-sync summaries.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a recoverable problem. It is written even when not verbose.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Section prints a header separating the steps of one command.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timed starts timing a step and returns a func that logs its duration.
//
//	defer logger.Timed("sync " + dir)()
func Timed(name string) func() {
	start := now()
	return func() {
		Debug("%s took %s", name, now().Sub(start).Round(time.Millisecond))
	}
}

func logf(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level < LevelWarn && !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
