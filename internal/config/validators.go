package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/dragselect/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// validatorRegistry manages the set of registered validators.
type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// registry is the global validator registry.
var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

// getValidator returns the validator for a key, or nil if not registered.
func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a positive integer.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// NonNegativeFloatValidator returns a validator that ensures a value is a
// finite number >= 0.
func NonNegativeFloatValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a non-negative number, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// IntListValidator returns a validator for comma separated lists of
// non-negative integers. The empty list is valid.
func IntListValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		parts := strings.Split(value, ",")
		normalized := make([]string, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 {
				colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a comma separated list of positions, using default: %s", key, value, defaultValue))
				return defaultValue, nil
			}
			normalized = append(normalized, strconv.Itoa(n))
		}
		return strings.Join(normalized, ","), nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the allowed enum values.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		valueLower := strings.ToLower(value)
		if !allowed[valueLower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return valueLower, nil
	}
}

// BoolValidator returns a validator that normalizes and validates boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// Behaviors lists the accepted values of the behavior key.
var Behaviors = map[string]bool{
	"select_and_keep":    true,
	"select_and_reverse": true,
	"select_and_undo":    true,
	"toggle_and_keep":    true,
	"toggle_and_reverse": true,
	"toggle_and_undo":    true,
}

// initValidators registers all configuration validators.
func initValidators() {
	positiveInt := PositiveIntValidator()
	RegisterValidator("item_count", positiveInt)
	RegisterValidator("long_press_ms", positiveInt)
	RegisterValidator("frame_interval_ms", positiveInt)
	RegisterValidator("logging_max_files", positiveInt)

	nonNegativeFloat := NonNegativeFloatValidator()
	RegisterValidator("hotspot_relative_edge", nonNegativeFloat)
	RegisterValidator("hotspot_max_edge", nonNegativeFloat)
	RegisterValidator("relative_velocity", nonNegativeFloat)
	RegisterValidator("min_velocity", nonNegativeFloat)
	RegisterValidator("max_velocity", nonNegativeFloat)
	RegisterValidator("slide_start", nonNegativeFloat)
	RegisterValidator("slide_end", nonNegativeFloat)

	RegisterValidator("locked_items", IntListValidator())

	RegisterValidator("catalog_backend", EnumValidator(map[string]bool{"memory": true, "sqlite": true}))
	RegisterValidator("orientation", EnumValidator(map[string]bool{"vertical": true, "horizontal": true}))
	RegisterValidator("edge_type", EnumValidator(map[string]bool{"inside": true, "inside_extend": true}))
	RegisterValidator("behavior", EnumValidator(Behaviors))
	RegisterValidator("logging_level", EnumValidator(map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}))

	boolValidator := BoolValidator()
	RegisterValidator("auto_enter_slide", boolValidator)
	RegisterValidator("allow_drag_in_slide", boolValidator)
	RegisterValidator("logging_enabled", boolValidator)
	RegisterValidator("debug", boolValidator)
}

// normalizeBool converts various boolean representations to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

// allowedValues returns a comma-separated string of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
