package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestApplyOverrides(t *testing.T) {
	km := DefaultArrows()

	ApplyOverrides(&km, map[string][]string{
		"toggle_mode": {"m"},
		"page_down":   {"ctrl+f"},
	})

	if keys := km.ToggleMode.Keys(); len(keys) != 1 || keys[0] != "m" {
		t.Errorf("Expected ToggleMode override ['m'], got %v", keys)
	}
	if keys := km.PageDown.Keys(); len(keys) != 1 || keys[0] != "ctrl+f" {
		t.Errorf("Expected PageDown override ['ctrl+f'], got %v", keys)
	}

	// The help description survives the override
	if desc := km.ToggleMode.Help().Desc; desc != "slides/docs" {
		t.Errorf("Expected help description preserved, got %q", desc)
	}
	// The help key shows the first override key
	if helpKey := km.ToggleMode.Help().Key; helpKey != "m" {
		t.Errorf("Expected help key 'm', got %q", helpKey)
	}
}

func TestApplyOverridesSpaceSpelling(t *testing.T) {
	km := DefaultArrows()

	ApplyOverrides(&km, map[string][]string{
		"next": {"space", "right"},
	})

	keys := km.Next.Keys()
	if len(keys) != 2 || keys[0] != " " || keys[1] != "right" {
		t.Errorf("Expected 'space' normalized to ' ', got %v", keys)
	}
	// The help label keeps the human spelling
	if helpKey := km.Next.Help().Key; helpKey != "space" {
		t.Errorf("Expected help key 'space', got %q", helpKey)
	}
}

func TestApplyOverridesUnknownKeyIgnored(t *testing.T) {
	km := DefaultArrows()
	before := km.Next.Keys()

	ApplyOverrides(&km, map[string][]string{
		"no_such_action": {"x"},
	})

	after := km.Next.Keys()
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("Expected bindings unchanged, got %v", after)
	}
}

func TestApplyOverridesNil(t *testing.T) {
	km := DefaultArrows()
	ApplyOverrides(&km, nil)

	if keys := km.Prev.Keys(); len(keys) < 1 || keys[0] != "left" {
		t.Errorf("Expected defaults untouched, got %v", keys)
	}
}

func TestApplyOverridesEmbedded(t *testing.T) {
	type extended struct {
		Map
		Extra key.Binding
	}

	km := extended{
		Map:   DefaultArrows(),
		Extra: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "extra")),
	}

	ApplyOverrides(&km, map[string][]string{
		"next":  {"n"},
		"extra": {"y"},
	})

	if keys := km.Next.Keys(); len(keys) != 1 || keys[0] != "n" {
		t.Errorf("Expected embedded Next override, got %v", keys)
	}
	if keys := km.Extra.Keys(); len(keys) != 1 || keys[0] != "y" {
		t.Errorf("Expected Extra override, got %v", keys)
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Next", "next"},
		{"ToggleMode", "toggle_mode"},
		{"PageUp", "page_up"},
		{"ExitSlides", "exit_slides"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := camelToSnake(tt.input)
			if result != tt.expected {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
