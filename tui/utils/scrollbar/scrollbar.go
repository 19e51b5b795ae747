// Package scrollbar renders a right-edge scroll indicator for
// viewports.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/lecterntools/lectern/tui/theme"
)

const (
	thumbChar = "█"
	trackChar = "░"
)

// Generate returns one scrollbar cell per line for a bar of the given
// height. When the content fits the view entirely, every cell is blank:
// a reader who cannot scroll gets no bar.
func Generate(vp *viewport.Model, height int) []string {
	cells := make([]string, height)
	for i := range cells {
		cells[i] = " "
	}
	if height <= 0 {
		return cells
	}

	total := vp.TotalLineCount()
	if total == 0 || total <= vp.Height {
		return cells
	}

	// Thumb size proportional to the visible share of the content.
	thumb := (height * vp.Height) / total
	if thumb < 1 {
		thumb = 1
	}

	percent := vp.ScrollPercent()
	if percent < 0 {
		percent = 0
	} else if percent > 1 {
		percent = 1
	}

	maxStart := height - thumb
	start := int(float64(maxStart)*percent + 0.5)
	if start < 0 {
		start = 0
	} else if start > maxStart {
		start = maxStart
	}

	muted := theme.DefaultTheme.Muted
	for i := range cells {
		if i >= start && i < start+thumb {
			cells[i] = muted.Render(thumbChar)
		} else {
			cells[i] = muted.Render(trackChar)
		}
	}
	return cells
}

// Overlay renders the viewport with a scrollbar column on its right
// edge. Lines are padded to the viewport width first so the bar forms
// a straight column.
func Overlay(vp *viewport.Model) string {
	lines := strings.Split(vp.View(), "\n")
	cells := Generate(vp, len(lines))

	out := make([]string, len(lines))
	for i, line := range lines {
		pad := vp.Width - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		cell := " "
		if i < len(cells) {
			cell = cells[i]
		}
		out[i] = line + strings.Repeat(" ", pad) + " " + cell
	}
	return strings.Join(out, "\n")
}
