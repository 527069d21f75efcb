// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "DRAGSELECT_"
	// EnvConfigPath points at an explicit configuration file.
	EnvConfigPath = EnvPrefix + "CONFIG_PATH"
)

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	// Reset to defaults
	config = make(map[string]string)
	configMap = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	// Re-apply environment variable overrides so env wins
	loadFromEnv()
	validate()
	computeDirs()
	createSampleConfig()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "dragselect"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "dragselect"))

	// Catalog
	setDefault("catalog_backend", "memory")
	setDefault("catalog_path", "")
	setDefault("item_count", "500")
	setDefault("locked_items", "6")

	// List and selection
	setDefault("orientation", "vertical")
	setDefault("behavior", "select_and_reverse")
	setDefault("auto_enter_slide", "false")
	setDefault("allow_drag_in_slide", "false")
	setDefault("slide_start", "0")
	setDefault("slide_end", "4")
	setDefault("long_press_ms", "400")

	// Auto-scroll, in cells and cells per second
	setDefault("edge_type", "inside_extend")
	setDefault("hotspot_relative_edge", "0.2")
	setDefault("hotspot_max_edge", "0")
	setDefault("relative_velocity", "2")
	setDefault("min_velocity", "6")
	setDefault("max_velocity", "60")
	setDefault("frame_interval_ms", "16")

	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// loadFromFile reads configuration from a file.
func loadFromFile() {
	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		if configDir, ok := config["config_dir"]; ok {
			configPath = filepath.Join(configDir, "config"+FileExtTOML)
			if _, err := os.Stat(configPath); err != nil {
				configPath = ""
			}
		}
	}
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case FileExtTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		return
	}
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string representation.
// Arrays of scalars are joined with commas.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	case []interface{}:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := coerceConfigValue(item)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// computeDirs fills paths derived from state_dir.
func computeDirs() {
	stateDir := config["state_dir"]
	if stateDir == "" {
		return
	}
	if config["catalog_path"] == "" {
		config["catalog_path"] = filepath.Join(stateDir, "catalog.db")
	}
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// createSampleConfig creates a sample configuration file if none exists.
func createSampleConfig() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	samplePath := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(samplePath); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	data, err := marshal(configMap)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# dragselect configuration\n# This file is in TOML format.\n# Uncomment and edit values as needed.\n\n"
	if err := os.WriteFile(samplePath, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", samplePath, err))
	}
}

func marshal(values map[string]string) ([]byte, error) {
	typed := make(map[string]interface{}, len(values))
	for k, v := range values {
		if k == "locked_items" {
			// keep lists as strings so "6" and "6,10" read back the same way
			typed[k] = v
			continue
		}
		typed[k] = valueToInterface(v)
	}
	return toml.Marshal(typed)
}

// TOML returns the effective configuration encoded as TOML.
func TOML() ([]byte, error) {
	return marshal(All())
}

// All returns a copy of the effective configuration.
func All() map[string]string {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(configMap))
	for k := range configMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set overrides a single value after Load. Intended for command-line flags.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	if validator := getValidator(key); validator != nil {
		if normalized, err := validator(key, value, configMap[key]); err == nil {
			value = normalized
		}
	}
	config[key] = value
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetFloat returns a configuration value as float64, or default.
func GetFloat(key string, defaultValue float64) float64 {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// GetIntList returns a comma separated configuration value as integers.
// Invalid entries are skipped.
func GetIntList(key string) []int {
	raw := Get(key, "")
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
