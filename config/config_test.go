package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes(t *testing.T) {
	yamlData := `
version: "1.0"
theme: kanagawa
tui:
  preset: vim
  keybindings:
    next: ["right", "space"]
watch:
  enabled: false
  debounce_ms: 250
follow:
  addr: ":8417"
`
	cfg, err := LoadFromBytes([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "kanagawa", cfg.Theme)
	require.NotNil(t, cfg.TUI)
	assert.Equal(t, "vim", cfg.TUI.Preset)
	assert.Equal(t, []string{"right", "space"}, cfg.TUI.Keybindings["next"])
	require.NotNil(t, cfg.Watch)
	assert.False(t, cfg.Watch.IsEnabled())
	assert.Equal(t, 250, cfg.Watch.DebounceMs)
	require.NotNil(t, cfg.Follow)
	assert.Equal(t, ":8417", cfg.Follow.Addr)
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("theme: terminal\n"))
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version, "version should default")
	assert.True(t, cfg.Watch.IsEnabled(), "watch should default to enabled")
	assert.Equal(t, "100ms", cfg.Watch.Debounce().String())
}

func TestLoadFromBytesRejectsBadPreset(t *testing.T) {
	_, err := LoadFromBytes([]byte("tui:\n  preset: dvorak\n"))
	require.Error(t, err)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lectern.toml")
	tomlData := `
version = "1.0"
theme = "terminal"

[tui]
preset = "arrows"

[watch]
debounce_ms = 50
`
	require.NoError(t, os.WriteFile(path, []byte(tomlData), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "terminal", cfg.Theme)
	require.NotNil(t, cfg.TUI)
	assert.Equal(t, "arrows", cfg.TUI.Preset)
	assert.Equal(t, 50, cfg.Watch.DebounceMs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "lectern.yml"))
	require.Error(t, err)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LECTERN_TEST_THEME", "kanagawa")

	expanded := expandEnvVars("theme: ${LECTERN_TEST_THEME}\naddr: ${LECTERN_TEST_MISSING:-:9000}\n")
	assert.Contains(t, expanded, "theme: kanagawa")
	assert.Contains(t, expanded, "addr: :9000")
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "talks", "2026")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, "lectern.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: \"1.0\"\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestLoadFromMergesGlobalAndProject(t *testing.T) {
	globalDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(globalDir, "lectern"), 0755))
	globalCfg := "theme: terminal\nwatch:\n  debounce_ms: 300\n"
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "lectern", "lectern.yml"), []byte(globalCfg), 0644))
	t.Setenv("XDG_CONFIG_HOME", globalDir)

	projectDir := t.TempDir()
	projectCfg := "theme: kanagawa\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "lectern.yml"), []byte(projectCfg), 0644))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)

	cfg, err := LoadFromWithLogger(projectDir, logger)
	require.NoError(t, err)

	assert.Equal(t, "kanagawa", cfg.Theme, "project theme should override global")
	assert.Equal(t, 300, cfg.Watch.DebounceMs, "global watch settings should survive")
}

func TestLoadFromWithoutAnyConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err, "missing config should not be an error")
	assert.Equal(t, "1.0", cfg.Version)
}
