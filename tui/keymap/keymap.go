// Package keymap defines the presenter's keybindings: two base presets
// plus per-action overrides from configuration.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lecterntools/lectern/config"
)

// Map holds the presenter's keybindings.
type Map struct {
	// Slide navigation
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Jump  key.Binding // digits 1-9

	// Document scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Mode switching
	ToggleMode key.Binding
	ExitSlides key.Binding

	// System
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// NewFromConfig builds the keymap for the configured preset and applies
// per-action overrides.
func NewFromConfig(cfg *config.TUIConfig) Map {
	preset := ""
	if cfg != nil {
		preset = cfg.Preset
	}

	km := ForPreset(preset)
	if cfg != nil {
		ApplyOverrides(&km, cfg.Keybindings)
	}
	return km
}

// ForPreset returns the named base preset. Unknown names fall back to
// the arrows preset.
func ForPreset(name string) Map {
	if name == "vim" {
		return DefaultVim()
	}
	return DefaultArrows()
}

// DefaultArrows returns the arrow-key preset.
func DefaultArrows() Map {
	return Map{
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("→/space", "next slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to slide"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "slides/docs"),
		),
		ExitSlides: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit slides"),
		),

		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultVim returns the vim-style preset. Arrow keys keep working.
func DefaultVim() Map {
	km := DefaultArrows()

	km.Prev = key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous slide"),
	)
	km.Next = key.NewBinding(
		key.WithKeys("l", "right", " "),
		key.WithHelp("l/→/space", "next slide"),
	)
	km.First = key.NewBinding(
		key.WithKeys("gg", "home"),
		key.WithHelp("gg", "first slide"),
	)
	km.Last = key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last slide"),
	)
	km.Up = key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	)
	km.PageUp = key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	)
	km.PageDown = key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	)

	return km
}

// ShortHelp returns the bindings for the footer hint line.
func (k Map) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleMode, k.Help, k.Quit}
}

// Sections groups the bindings for the help overlay.
func (k Map) Sections() []Section {
	return []Section{
		NavigationSection(k.Prev, k.Next, k.First, k.Last).With(k.Jump),
		DocumentSection(k.Up, k.Down, k.PageUp, k.PageDown),
		ViewSection(k.ToggleMode, k.ExitSlides),
		SystemSection(k.Reload, k.Help, k.Quit),
	}
}
