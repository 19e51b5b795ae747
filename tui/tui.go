// Package tui hosts the presenter program and its supporting
// components, key maps, and themes.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Setup adjusts the lipgloss color profile from the environment before
// the presenter starts.
//
// NO_COLOR disables styling entirely. CLICOLOR_FORCE=1 or
// COLORTERM=truecolor force full color, which keeps slides styled when
// output is piped or recorded. In a normal terminal neither applies
// and lipgloss autodetects the profile.
func Setup() {
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
