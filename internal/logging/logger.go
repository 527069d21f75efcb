// Package logging provides structured file logging for dragselect.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/dragselect/internal/colors"
)

// filePrefix starts every log file name; rotation only touches these files.
const filePrefix = "dragselect_"

// Logger is the structured logging interface.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
	// Shutdown flushes any buffered logs and releases resources.
	Shutdown() error
}

// loggerImpl is the charmbracelet/log based implementation.
type loggerImpl struct {
	clogger *clog.Logger
	file    *os.File
	path    string
}

// Init initializes a new Logger with the given configuration.
// If cfg.Enabled is false, returns a no-op logger. Otherwise it rotates old
// files, opens a new log file and writes JSON lines to it.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	logDir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine log directory: %w", err)
	}
	if err := rotate(logDir, cfg.MaxFiles); err != nil {
		colors.Warning("log rotation failed:", err.Error())
	}
	fname := fmt.Sprintf("%s%s_PID%d_%s.log",
		filePrefix,
		time.Now().Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
	path := filepath.Join(logDir, fname)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	clogger := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	clogger = clogger.With("pid", cfg.PID, "command", cfg.Command)
	return &loggerImpl{clogger: clogger, file: f, path: path}, nil
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *loggerImpl) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

// With shares the file and adds fields to every entry of the new logger.
func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...), file: l.file, path: l.path}
}

func (l *loggerImpl) Shutdown() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// noopLogger is a logger that discards all output.
type noopLogger struct{}

func (n noopLogger) Debug(msg string, args ...any) {}
func (n noopLogger) Info(msg string, args ...any)  {}
func (n noopLogger) Warn(msg string, args ...any)  {}
func (n noopLogger) Error(msg string, args ...any) {}
func (n noopLogger) With(args ...any) Logger       { return n }
func (n noopLogger) Shutdown() error               { return nil }

// Nop returns a logger that discards everything.
func Nop() Logger {
	return noopLogger{}
}

var (
	globalLogger     Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

// InitGlobal initializes the global logger using configuration from the global config.
// It is safe to call multiple times; only the first call initializes the logger.
func InitGlobal() error {
	var err error
	globalLoggerOnce.Do(func() {
		var l Logger
		l, err = Init(FromGlobalConfig())
		if err == nil {
			SetGlobal(l)
		}
	})
	if err != nil {
		return err
	}
	colors.SetLogger(GetGlobal())
	if path := CurrentLogFile(); path != "" {
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// SetGlobal replaces the global logger.
func SetGlobal(l Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = l
}

// GetGlobal returns the global logger, or a no-op logger if not initialized.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	GetGlobal().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	GetGlobal().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	GetGlobal().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	GetGlobal().Error(msg, args...)
}

// With returns a new global logger with additional key-value pairs.
func With(args ...any) Logger {
	return GetGlobal().With(args...)
}

// ShutdownGlobal shuts down the global logger.
func ShutdownGlobal() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger != nil {
		return globalLogger.Shutdown()
	}
	return nil
}

// CurrentLogFile returns the path of the global log file, or "" when
// logging is disabled.
func CurrentLogFile() string {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if impl, ok := globalLogger.(*loggerImpl); ok {
		return impl.path
	}
	return ""
}
