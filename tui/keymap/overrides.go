package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

var bindingType = reflect.TypeOf(key.Binding{})

// walkBindings visits every key.Binding field of the struct behind v,
// recursing through embedded structs. Both the override and export
// paths use it to tie struct fields to their snake_case config keys.
func walkBindings(v reflect.Value, visit func(name string, field reflect.Value)) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		sf := t.Field(i)
		if !field.CanInterface() {
			continue
		}
		if sf.Anonymous && field.Kind() == reflect.Struct {
			walkBindings(field, visit)
			continue
		}
		if sf.Type == bindingType {
			visit(sf.Name, field)
		}
	}
}

// ApplyOverrides rebinds actions named in the tui.keybindings config
// block. Config keys are the snake_case spellings of the key map's
// field names, so toggle_mode targets km.ToggleMode. The replacement
// keeps the old help description and labels itself with the first
// configured key.
func ApplyOverrides(km interface{}, overrides map[string][]string) {
	if len(overrides) == 0 {
		return
	}
	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}

	walkBindings(v, func(name string, field reflect.Value) {
		keys, ok := overrides[camelToSnake(name)]
		if !ok || len(keys) == 0 || !field.CanSet() {
			return
		}
		desc := field.Interface().(key.Binding).Help().Desc
		binding := key.NewBinding(
			key.WithKeys(normalizeKeys(keys)...),
			key.WithHelp(keys[0], desc),
		)
		field.Set(reflect.ValueOf(binding))
	})
}

// normalizeKeys maps config spellings to the strings key messages
// actually carry. Users write "space"; messages say " ".
func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == "space" {
			k = " "
		}
		out[i] = k
	}
	return out
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ToggleMode -> toggle_mode, PageUp -> page_up
func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
