package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConfigs(t *testing.T) {
	enabled := false
	base := &Config{
		Version: "1.0",
		Theme:   "terminal",
		TUI: &TUIConfig{
			Preset: "arrows",
			Keybindings: map[string][]string{
				"next": {"right"},
				"prev": {"left"},
			},
		},
		Watch: &WatchConfig{DebounceMs: 300, Ignore: []string{"*.bak"}},
		Extensions: map[string]interface{}{
			"logging": map[string]interface{}{"level": "info", "report_caller": false},
		},
	}
	override := &Config{
		Theme: "kanagawa",
		TUI: &TUIConfig{
			Keybindings: map[string][]string{
				"next": {"right", "space"},
			},
		},
		Watch:  &WatchConfig{Enabled: &enabled},
		Follow: &FollowConfig{Addr: ":8417"},
		Extensions: map[string]interface{}{
			"logging": map[string]interface{}{"level": "debug"},
		},
	}

	merged := mergeConfigs(base, override)

	assert.Equal(t, "1.0", merged.Version)
	assert.Equal(t, "kanagawa", merged.Theme)

	require.NotNil(t, merged.TUI)
	assert.Equal(t, "arrows", merged.TUI.Preset, "preset should survive when override omits it")
	assert.Equal(t, []string{"right", "space"}, merged.TUI.Keybindings["next"])
	assert.Equal(t, []string{"left"}, merged.TUI.Keybindings["prev"])

	require.NotNil(t, merged.Watch)
	assert.False(t, merged.Watch.IsEnabled())
	assert.Equal(t, 300, merged.Watch.DebounceMs, "debounce should survive when override omits it")

	require.NotNil(t, merged.Follow)
	assert.Equal(t, ":8417", merged.Follow.Addr)

	logging, ok := merged.Extensions["logging"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "debug", logging["level"], "override should win inside merged extension maps")
	assert.Equal(t, false, logging["report_caller"], "base keys should survive the extension merge")
}

func TestMergeConfigsNilSections(t *testing.T) {
	base := &Config{Version: "1.0"}
	override := &Config{TUI: &TUIConfig{Preset: "vim"}}

	merged := mergeConfigs(base, override)

	require.NotNil(t, merged.TUI)
	assert.Equal(t, "vim", merged.TUI.Preset)
	assert.Nil(t, merged.Watch)
	assert.Nil(t, merged.Follow)
}
