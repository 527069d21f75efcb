// Package colors provides colored console messages for CLI commands.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled = false
	muted        = false
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("DRAGSELECT_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the defaults.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Mute suppresses console output while a full-screen program owns the
// terminal. Messages are still mirrored to the logger.
func Mute(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	muted = enabled
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarn
	levelError
)

func emit(lvl level, msgs []string) {
	msg := strings.Join(msgs, " ")

	mu.RLock()
	l, out, errOut, quiet, debug := logger, stdout, stderr, muted, debugEnabled
	mu.RUnlock()

	if lvl == levelDebug && !debug {
		return
	}
	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelInfo:
			l.Info(msg)
		case levelSuccess:
			l.Info(msg, "type", "success")
		case levelWarn:
			l.Warn(msg)
		case levelError:
			l.Error(msg)
		}
	}
	if quiet {
		return
	}

	var err error
	switch lvl {
	case levelDebug:
		_, err = fmt.Fprintf(errOut, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
	case levelInfo:
		_, err = fmt.Fprintf(out, "%s%s%s\n", Blue, msg, Reset)
	case levelSuccess:
		_, err = fmt.Fprintf(out, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
	case levelWarn:
		_, err = fmt.Fprintf(errOut, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
	case levelError:
		_, err = fmt.Fprintf(errOut, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
	}
	if err != nil {
		// plain stderr only, never recurse into emit
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) { emit(levelError, msgs) }

// Success outputs a success message to stdout.
func Success(msgs ...string) { emit(levelSuccess, msgs) }

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) { emit(levelWarn, msgs) }

// Info outputs an informational message to stdout.
func Info(msgs ...string) { emit(levelInfo, msgs) }

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) { emit(levelDebug, msgs) }
