package keymap

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Info is a serializable description of the active key map. The keys
// command renders it so users can see what they can press and which
// configuration key overrides each action.
type Info struct {
	Preset   string        `json:"preset"`
	Sections []SectionInfo `json:"sections"`
}

// SectionInfo is a serializable representation of a keybinding section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is a serializable representation of a single keybinding.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	ConfigKey   string   `json:"configKey"` // override key under tui.keybindings
}

// Export builds an Info from any sectioned key map, such as one produced
// by ForPreset or NewFromConfig.
func Export(preset string, m SectionedKeyMap) Info {
	info := Info{
		Preset:   preset,
		Sections: exportSections(m.Sections()),
	}

	// Field names give the canonical override keys. Sections hold copies
	// of the bindings, so match them back up by help description.
	configKeys := make(map[string]string)
	walkBindings(reflect.ValueOf(m), func(name string, field reflect.Value) {
		if binding, ok := field.Interface().(key.Binding); ok && binding.Help().Desc != "" {
			configKeys[binding.Help().Desc] = camelToSnake(name)
		}
	})

	for i := range info.Sections {
		for j := range info.Sections[i].Bindings {
			b := &info.Sections[i].Bindings[j]
			if cKey, ok := configKeys[b.Description]; ok {
				b.ConfigKey = cKey
			} else {
				b.ConfigKey = strings.ReplaceAll(strings.ToLower(b.Description), " ", "_")
			}
		}
	}

	return info
}

func exportSections(sections []Section) []SectionInfo {
	result := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		bindings := make([]BindingInfo, 0, len(s.Bindings))
		for _, b := range s.Bindings {
			bindings = append(bindings, BindingInfo{
				Keys:        b.Keys(),
				Description: b.Help().Desc,
				Enabled:     b.Enabled(),
			})
		}
		result = append(result, SectionInfo{Name: s.Name, Bindings: bindings})
	}
	return result
}
