package keymap

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
)

func TestSequenceState_UpdateKey(t *testing.T) {
	s := NewSequenceState()

	if got := s.UpdateKey("g"); got != "g" {
		t.Errorf("UpdateKey(g)=%q, want %q", got, "g")
	}
	if got := s.UpdateKey("g"); got != "gg" {
		t.Errorf("UpdateKey(g)=%q, want %q", got, "gg")
	}
	if !s.IsPending() {
		t.Error("Expected pending state after input")
	}
}

func TestSequenceState_Clear(t *testing.T) {
	s := NewSequenceState()
	s.UpdateKey("g")
	s.Clear()

	if s.Buffer() != "" {
		t.Errorf("Buffer after Clear=%q, want empty", s.Buffer())
	}
	if s.IsPending() {
		t.Error("Expected no pending state after Clear")
	}
}

func TestSequenceState_Timeout(t *testing.T) {
	s := NewSequenceStateWithTimeout(10 * time.Millisecond)
	s.UpdateKey("g")
	time.Sleep(20 * time.Millisecond)

	if got := s.UpdateKey("g"); got != "g" {
		t.Errorf("Buffer after timeout=%q, want %q", got, "g")
	}
}

func TestSequenceState_ProcessKey(t *testing.T) {
	first := key.NewBinding(key.WithKeys("gg", "home"))
	last := key.NewBinding(key.WithKeys("ge"))

	tests := []struct {
		name     string
		keys     []string
		expected SequenceResult
		idx      int
	}{
		{
			name:     "single g is pending",
			keys:     []string{"g"},
			expected: SequencePending,
			idx:      -1,
		},
		{
			name:     "gg is match",
			keys:     []string{"g", "g"},
			expected: SequenceMatch,
			idx:      0,
		},
		{
			name:     "ge is match",
			keys:     []string{"g", "e"},
			expected: SequenceMatch,
			idx:      1,
		},
		{
			name:     "named key matches whole",
			keys:     []string{"home"},
			expected: SequenceMatch,
			idx:      0,
		},
		{
			name:     "h is none",
			keys:     []string{"h"},
			expected: SequenceNone,
			idx:      -1,
		},
		{
			name:     "overshoot past a match is none",
			keys:     []string{"g", "g", "g"},
			expected: SequenceNone,
			idx:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequenceState()
			var result SequenceResult
			var idx int

			for _, k := range tt.keys {
				result, idx = s.ProcessKey(k, first, last)
			}

			if result != tt.expected || idx != tt.idx {
				t.Errorf("ProcessKey(%v)=(%v,%d), want (%v,%d)",
					tt.keys, result, idx, tt.expected, tt.idx)
			}
		})
	}
}

func TestSequenceState_ProcessWithClear(t *testing.T) {
	first := key.NewBinding(key.WithKeys("gg"))
	s := NewSequenceState()

	result, _ := s.ProcessKey("g", first)
	if result != SequencePending {
		t.Errorf("First g should be pending, got %v", result)
	}

	result, idx := s.ProcessKey("g", first)
	if result != SequenceMatch || idx != 0 {
		t.Errorf("Second g should match, got result=%v idx=%d", result, idx)
	}

	s.Clear()
	result, _ = s.ProcessKey("g", first)
	if result != SequencePending {
		t.Errorf("After clear, g should be pending, got %v", result)
	}
}

func TestSequenceBindings(t *testing.T) {
	vim := SequenceBindings(DefaultVim())
	if len(vim) != 1 {
		t.Fatalf("Expected 1 sequence binding for vim preset, got %d", len(vim))
	}
	keys := vim[0].Keys()
	if len(keys) != 1 || keys[0] != "gg" {
		t.Errorf("Expected vim sequence keys [gg], got %v", keys)
	}

	if arrows := SequenceBindings(DefaultArrows()); len(arrows) != 0 {
		t.Errorf("Expected no sequence bindings for arrows preset, got %d", len(arrows))
	}
}

func TestSequenceBindings_NamedKeysNeverPend(t *testing.T) {
	// h must dispatch immediately in the vim preset even though First
	// also carries the named home key.
	s := NewSequenceState()
	result, _ := s.ProcessKey("h", SequenceBindings(DefaultVim())...)
	if result != SequenceNone {
		t.Errorf("h should not pend against home, got %v", result)
	}
}

func TestIsSequenceKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"gg", true},
		{"ge", true},
		{"g", false},
		{"home", false},
		{"pgdown", false},
		{"ctrl+u", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := isSequenceKey(tt.key); got != tt.expected {
				t.Errorf("isSequenceKey(%q)=%v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}
