package nav

import (
	"strconv"
	"strings"
)

const fragmentPrefix = "slide-"

// FormatFragment renders the fragment for a 0-based slide index, using
// the 1-based number people see in the counter.
func FormatFragment(index int) string {
	return fragmentPrefix + strconv.Itoa(index+1)
}

// ParseFragment extracts the 0-based slide index from a fragment.
// Anything but "slide-" followed by a positive decimal number is
// rejected.
func ParseFragment(fragment string) (int, bool) {
	rest, ok := strings.CutPrefix(fragment, fragmentPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	num, err := strconv.Atoi(rest)
	if err != nil || num < 1 {
		return 0, false
	}
	return num - 1, true
}
