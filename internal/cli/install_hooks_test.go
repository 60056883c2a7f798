package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallHooks_FreshSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	require.NoError(t, installHooks(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var settings map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &settings))

	hooks, ok := settings["hooks"].(map[string]interface{})
	require.True(t, ok)
	for settingName := range hookEvents {
		assert.Contains(t, hooks, settingName)
	}
}

func TestInstallHooks_PreservesExistingSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "opus", "hooks": {"Custom": []}}`), 0644))

	require.NoError(t, installHooks(path))

	var settings map[string]interface{}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &settings))

	assert.Equal(t, "opus", settings["model"])
	hooks := settings["hooks"].(map[string]interface{})
	assert.Contains(t, hooks, "Custom")
	assert.Contains(t, hooks, "Stop")
}

func TestInstallHooks_RejectsCorruptSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	assert.Error(t, installHooks(path))
}
