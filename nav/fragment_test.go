package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		fragment string
		index    int
		ok       bool
	}{
		{"slide-1", 0, true},
		{"slide-2", 1, true},
		{"slide-12", 11, true},
		{"slide-007", 6, true},
		{"", 0, false},
		{"slide-", 0, false},
		{"slide-0", 0, false},
		{"slide--3", 0, false},
		{"slide-+3", 0, false},
		{"slide-3x", 0, false},
		{"slide-3 ", 0, false},
		{"Slide-3", 0, false},
		{"3", 0, false},
		{"page-3", 0, false},
		{"slide-99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			idx, ok := ParseFragment(tt.fragment)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.index, idx)
			}
		})
	}
}

func TestFormatFragment(t *testing.T) {
	assert.Equal(t, "slide-1", FormatFragment(0))
	assert.Equal(t, "slide-10", FormatFragment(9))
}

func TestFragmentRoundTrip(t *testing.T) {
	for index := 0; index < 12; index++ {
		parsed, ok := ParseFragment(FormatFragment(index))
		assert.True(t, ok)
		assert.Equal(t, index, parsed)
	}
}
