// Package sanitize derives safe file and anchor names from document
// titles.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// nonKebabRegex matches everything a kebab-case name cannot carry
	nonKebabRegex = regexp.MustCompile(`[^a-z0-9-]+`)

	// multiDashRegex matches multiple consecutive dashes
	multiDashRegex = regexp.MustCompile(`-+`)
)

// ForFilename sanitizes a string for use in a filename (kebab-case).
// Exported decks named after their document title go through this.
func ForFilename(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	// Remove non-alphanumeric characters, except hyphens
	s = nonKebabRegex.ReplaceAllString(s, "")
	// Collapse multiple hyphens
	s = multiDashRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 { // Truncate long names
		s = s[:50]
	}
	return s
}

// ForAnchor sanitizes a heading for use as an HTML anchor id. Exported
// decks carry one per slide title so fragments can address headings as
// well as slide numbers.
func ForAnchor(s string) string {
	s = ForFilename(s)
	if s == "" {
		return ""
	}
	// Anchors must not start with a digit
	if s[0] >= '0' && s[0] <= '9' {
		s = "s-" + s
	}
	return s
}
