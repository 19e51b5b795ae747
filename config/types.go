package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/lecterntools/lectern/errors"
)

// TUIConfig holds presenter appearance and input settings.
type TUIConfig struct {
	// Preset selects the base keybinding set ("arrows" or "vim").
	Preset string `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty" jsonschema:"description=Base keybinding preset (arrows or vim)"`

	// Keybindings overrides individual actions, e.g. next: ["right", "space"].
	Keybindings map[string][]string `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Per-action keybinding overrides"`

	// Icons selects the icon set ("nerd" or "ascii").
	Icons string `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"description=Icon set (nerd or ascii)"`
}

// WatchConfig controls live reload of the presented document.
type WatchConfig struct {
	Enabled    *bool    `yaml:"enabled,omitempty" toml:"enabled,omitempty" json:"enabled,omitempty" jsonschema:"description=Reload the document when it changes on disk"`
	DebounceMs int      `yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty" json:"debounce_ms,omitempty" jsonschema:"description=Debounce window for file events in milliseconds"`
	Ignore     []string `yaml:"ignore,omitempty" toml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Glob patterns for file events to ignore"`
}

// IsEnabled reports whether watching is on (default true).
func (w *WatchConfig) IsEnabled() bool {
	if w == nil || w.Enabled == nil {
		return true
	}
	return *w.Enabled
}

// Debounce returns the configured debounce window (default 100ms).
func (w *WatchConfig) Debounce() time.Duration {
	if w == nil || w.DebounceMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// IgnorePatterns returns the configured ignore patterns plus the
// built-in editor noise patterns.
func (w *WatchConfig) IgnorePatterns() []string {
	base := []string{"*.swp", "*.swx", "*~", ".#*", "4913"}
	if w == nil {
		return base
	}
	return append(base, w.Ignore...)
}

// FollowConfig configures the follow server.
type FollowConfig struct {
	Addr string `yaml:"addr,omitempty" toml:"addr,omitempty" json:"addr,omitempty" jsonschema:"description=Listen address for the follow server (e.g. :8417)"`
}

// Config represents the lectern.yml configuration
type Config struct {
	Version string        `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version (e.g. 1.0)"`
	Theme   string        `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme name"`
	TUI     *TUIConfig    `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Presenter appearance and input settings"`
	Watch   *WatchConfig  `yaml:"watch,omitempty" toml:"watch,omitempty" json:"watch,omitempty" jsonschema:"description=Live reload settings"`
	Follow  *FollowConfig `yaml:"follow,omitempty" toml:"follow,omitempty" json:"follow,omitempty" jsonschema:"description=Follow server settings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
}

// Validate checks constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.TUI != nil {
		switch c.TUI.Preset {
		case "", "arrows", "vim":
		default:
			return errors.ConfigInvalid(fmt.Sprintf("unknown tui preset %q (expected \"arrows\" or \"vim\")", c.TUI.Preset))
		}
		switch c.TUI.Icons {
		case "", "nerd", "ascii":
		default:
			return errors.ConfigInvalid(fmt.Sprintf("unknown tui icons %q (expected \"nerd\" or \"ascii\")", c.TUI.Icons))
		}
	}
	if c.Watch != nil && c.Watch.DebounceMs < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMs))
	}
	return nil
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded lectern.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
