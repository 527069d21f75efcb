package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(EnvConfigPath, "")
	return dir
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	Load()

	assert.Equal(t, "memory", Get("catalog_backend", ""))
	assert.Equal(t, "select_and_reverse", Get("behavior", ""))
	assert.Equal(t, "inside_extend", Get("edge_type", ""))
	assert.Equal(t, 500, GetInt("item_count", 0))
	assert.Equal(t, []int{6}, GetIntList("locked_items"))
	assert.InDelta(t, 0.2, GetFloat("hotspot_relative_edge", 0), 1e-12)
	assert.InDelta(t, 2.0, GetFloat("relative_velocity", 0), 1e-12)
	assert.False(t, GetBool("auto_enter_slide", true))
	assert.Equal(t, filepath.Join(dir, "state", "dragselect", "catalog.db"), Get("catalog_path", ""))
}

func TestLoadWritesSampleConfig(t *testing.T) {
	dir := isolate(t)
	Load()

	samplePath := filepath.Join(dir, "config", "dragselect", "config.toml")
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &raw))
	assert.Equal(t, "select_and_reverse", raw["behavior"])
	assert.Equal(t, "6", raw["locked_items"])
	assert.Equal(t, int64(500), raw["item_count"])
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "custom.toml")
	content := `
item_count = 120
behavior = "toggle_and_undo"
orientation = "horizontal"
relative_velocity = 3.5
locked_items = [2, 4]
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))
	t.Setenv(EnvConfigPath, configFile)
	t.Setenv("DRAGSELECT_ITEM_COUNT", "80")

	Load()

	assert.Equal(t, 80, GetInt("item_count", 0), "environment wins over file")
	assert.Equal(t, "toggle_and_undo", Get("behavior", ""))
	assert.Equal(t, "horizontal", Get("orientation", ""))
	assert.InDelta(t, 3.5, GetFloat("relative_velocity", 0), 1e-12)
	assert.Equal(t, []int{2, 4}, GetIntList("locked_items"))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("DRAGSELECT_ITEM_COUNT", "-3")
	t.Setenv("DRAGSELECT_BEHAVIOR", "select_everything")
	t.Setenv("DRAGSELECT_MIN_VELOCITY", "fast")
	t.Setenv("DRAGSELECT_LOCKED_ITEMS", "1,x")
	t.Setenv("DRAGSELECT_DEBUG", "maybe")
	t.Setenv("DRAGSELECT_EDGE_TYPE", "INSIDE")

	Load()

	assert.Equal(t, 500, GetInt("item_count", 0))
	assert.Equal(t, "select_and_reverse", Get("behavior", ""))
	assert.Equal(t, "6", Get("min_velocity", ""))
	assert.Equal(t, "6", Get("locked_items", ""))
	assert.Equal(t, "false", Get("debug", ""))
	assert.Equal(t, "inside", Get("edge_type", ""), "enum values are lower-cased")
}

func TestEmptyLockedList(t *testing.T) {
	isolate(t)
	t.Setenv("DRAGSELECT_LOCKED_ITEMS", " ")

	Load()

	assert.Empty(t, GetIntList("locked_items"))
}

func TestSetValidates(t *testing.T) {
	isolate(t)
	Load()

	Set("behavior", "Toggle_And_Keep")
	assert.Equal(t, "toggle_and_keep", Get("behavior", ""))

	Set("item_count", "zero")
	assert.Equal(t, 500, GetInt("item_count", 0))
}

func TestTOMLDump(t *testing.T) {
	isolate(t)
	Load()

	data, err := TOML()
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &raw))
	assert.Equal(t, "vertical", raw["orientation"])
	assert.Equal(t, 0.2, raw["hotspot_relative_edge"])
	assert.Equal(t, false, raw["logging_enabled"])
	assert.Contains(t, Keys(), "frame_interval_ms")
}
