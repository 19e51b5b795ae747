package keymap

import "github.com/charmbracelet/bubbles/key"

// Section names shared between the key map and the help overlay.
const (
	SectionNavigation = "Navigation"
	SectionDocument   = "Document"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section groups related bindings under a heading for help rendering.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// FilterEnabled returns the section's enabled bindings.
func (s Section) FilterEnabled() []key.Binding {
	enabled := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	if len(enabled) == 0 {
		return nil
	}
	return enabled
}

// IsEmpty reports whether the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}

// With returns a copy of the section with extra bindings appended.
func (s Section) With(bindings ...key.Binding) Section {
	combined := make([]key.Binding, 0, len(s.Bindings)+len(bindings))
	combined = append(combined, s.Bindings...)
	combined = append(combined, bindings...)
	s.Bindings = combined
	return s
}

// SectionedKeyMap is implemented by key maps that organize their
// bindings into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// newSection pairs a name with its bindings.
func newSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// NavigationSection groups the slide movement bindings.
func NavigationSection(bindings ...key.Binding) Section {
	return newSection(SectionNavigation, bindings...)
}

// DocumentSection groups the in-slide scrolling bindings.
func DocumentSection(bindings ...key.Binding) Section {
	return newSection(SectionDocument, bindings...)
}

// ViewSection groups the display mode bindings.
func ViewSection(bindings ...key.Binding) Section {
	return newSection(SectionView, bindings...)
}

// SystemSection groups reload, help, and quit.
func SystemSection(bindings ...key.Binding) Section {
	return newSection(SectionSystem, bindings...)
}
