// Package table provides the shared lipgloss table styling for
// lectern's key listings.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// NewStyled creates a borderless, padded table. The help modal and the
// keys command render binding rows with it so the two listings line up
// the same way.
func NewStyled() *ltable.Table {
	return ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
