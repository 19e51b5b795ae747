package keymap

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SequenceResult classifies a buffered key against a set of sequence
// bindings.
type SequenceResult int

const (
	// SequenceNone means the buffer matches nothing and cannot grow
	// into a match.
	SequenceNone SequenceResult = iota
	// SequencePending means the buffer is a proper prefix of some
	// sequence; wait for more input.
	SequencePending
	// SequenceMatch means the buffer equals a complete sequence.
	SequenceMatch
)

// SequenceState buffers multi-key sequences like the vim preset's gg.
// Keys accumulate until they match, stop being a viable prefix, or the
// timeout between keystrokes elapses.
type SequenceState struct {
	buffer     string
	lastUpdate time.Time
	timeout    time.Duration
}

// NewSequenceState returns a sequence state with a 1 second timeout.
func NewSequenceState() *SequenceState {
	return NewSequenceStateWithTimeout(time.Second)
}

// NewSequenceStateWithTimeout returns a sequence state that clears its
// buffer when more than timeout passes between keys.
func NewSequenceStateWithTimeout(timeout time.Duration) *SequenceState {
	return &SequenceState{timeout: timeout}
}

// UpdateKey appends a key to the buffer, clearing it first when the
// timeout has elapsed, and returns the new buffer.
func (s *SequenceState) UpdateKey(k string) string {
	if s.timeout > 0 && time.Since(s.lastUpdate) > s.timeout {
		s.buffer = ""
	}
	s.lastUpdate = time.Now()
	s.buffer += k
	return s.buffer
}

// Clear resets the buffer. Call it after a match is handled and after
// SequenceNone so stale keys never prefix the next sequence.
func (s *SequenceState) Clear() {
	s.buffer = ""
}

// Buffer returns the current buffer contents.
func (s *SequenceState) Buffer() string {
	return s.buffer
}

// IsPending reports whether keys are buffered.
func (s *SequenceState) IsPending() bool {
	return s.buffer != ""
}

// ProcessKey buffers a key and classifies the result against the
// bindings. On SequenceMatch the index of the matched binding is
// returned; otherwise the index is -1.
func (s *SequenceState) ProcessKey(k string, bindings ...key.Binding) (SequenceResult, int) {
	buffer := s.UpdateKey(k)

	if idx := indexOfMatch(buffer, bindings); idx >= 0 {
		return SequenceMatch, idx
	}
	if couldComplete(buffer, bindings) {
		return SequencePending, -1
	}
	return SequenceNone, -1
}

// Process is ProcessKey for a tea.KeyMsg.
func (s *SequenceState) Process(msg tea.KeyMsg, bindings ...key.Binding) (SequenceResult, int) {
	return s.ProcessKey(msg.String(), bindings...)
}

// indexOfMatch returns the position of the binding one of whose keys
// equals buffer, or -1.
func indexOfMatch(buffer string, bindings []key.Binding) int {
	for i, b := range bindings {
		for _, k := range b.Keys() {
			if k == buffer {
				return i
			}
		}
	}
	return -1
}

// couldComplete reports whether buffer is a proper prefix of any key in
// any binding, meaning more input may still produce a match.
func couldComplete(buffer string, bindings []key.Binding) bool {
	if buffer == "" {
		return false
	}
	for _, b := range bindings {
		for _, k := range b.Keys() {
			if len(buffer) < len(k) && strings.HasPrefix(k, buffer) {
				return true
			}
		}
	}
	return false
}

// SequenceBindings returns the multi-key sequences in m that a sequence
// state must buffer. Named keys on the same bindings (home, end) arrive
// in a single message and are matched directly, so they are filtered out
// here: otherwise a lone h would register as a prefix of home.
// Only the vim preset's gg qualifies today, but overrides may add more.
func SequenceBindings(m Map) []key.Binding {
	var out []key.Binding
	for _, b := range []key.Binding{m.First} {
		var seqs []string
		for _, k := range b.Keys() {
			if isSequenceKey(k) {
				seqs = append(seqs, k)
			}
		}
		if len(seqs) > 0 {
			out = append(out, key.NewBinding(key.WithKeys(seqs...)))
		}
	}
	return out
}

// isSequenceKey reports whether k is a run of characters typed one at a
// time, as opposed to a named key or a modifier combination.
func isSequenceKey(k string) bool {
	if utf8.RuneCountInString(k) < 2 || strings.Contains(k, "+") {
		return false
	}
	_, named := namedKeys[k]
	return !named
}

var namedKeys = map[string]struct{}{
	"home": {}, "end": {}, "pgup": {}, "pgdown": {},
	"left": {}, "right": {}, "up": {}, "down": {},
	"tab": {}, "enter": {}, "esc": {}, "space": {},
	"backspace": {}, "delete": {}, "insert": {},
}
