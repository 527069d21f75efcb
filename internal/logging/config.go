package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/dragselect/internal/config"
)

const defaultMaxFiles = 10

// Config controls the file logger. Command and PID end up in the log file
// name and in every record.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	Command  string
	PID      int
}

// DefaultConfig is logging switched off at info level for this process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: defaultMaxFiles,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. The debug key overrides
// logging_level.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", cfg.Level)
	cfg.MaxFiles = config.GetInt("logging_max_files", defaultMaxFiles)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir creates and returns <state_dir>/logs, or a dragselect/logs
// directory under os.TempDir() when the state directory cannot be written.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if os.MkdirAll(dir, 0700) == nil && writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "dragselect", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
