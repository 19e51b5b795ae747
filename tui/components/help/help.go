// Package help renders key binding help: a one-line hint for the
// presenter footer, and a centered modal listing every binding.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lecterntools/lectern/tui/components/table"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/lecterntools/lectern/tui/theme"
)

// Layout margins for the modal view. One extra line below the viewport
// is reserved for the scroll hint.
const (
	verticalMargin   = 4
	horizontalMargin = 4
	gutterWidth      = 4
)

// Model is an embeddable help component.
type Model struct {
	Keys    keymap.Map
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string // heading of the modal view

	viewport viewport.Model
}

// New creates a help model for the given key map.
func New(keys keymap.Map) Model {
	vp := viewport.New(0, 0)
	// The presenter owns mouse handling; the modal only scrolls by key.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update handles resize and, while the modal is open, close keys and
// viewport scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.fillViewport()
		}

	case tea.KeyMsg:
		if !m.ShowAll {
			break
		}
		if key.Matches(msg, m.Keys.Help) || key.Matches(msg, m.Keys.Quit) || msg.Type == tea.KeyEsc {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders either the footer hint or the centered modal.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if !m.ShowAll {
		return m.viewShort()
	}

	content := m.viewport.View()
	if m.viewport.TotalLineCount() > m.viewport.Height {
		hint := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width).Render(m.scrollHint())
		content = lipgloss.JoinVertical(lipgloss.Right, content, hint)
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// Toggle switches between the hint line and the modal. Opening rebuilds
// the layout and scrolls back to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.fillViewport()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions available to the help view.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

func (m Model) scrollHint() string {
	switch {
	case m.viewport.AtTop():
		return "↓ more"
	case m.viewport.AtBottom():
		return "↑ more"
	default:
		return "↕ more"
	}
}

// viewShort renders the single-line footer hint: the help prompt
// followed by the short-help bindings.
func (m Model) viewShort() string {
	prompt := m.Theme.Muted.Render("Press ") +
		m.Theme.Highlight.Render("?") +
		m.Theme.Muted.Render(" for help")

	entries := []string{prompt}
	for _, binding := range m.Keys.ShortHelp() {
		h := binding.Help()
		if !binding.Enabled() || h.Key == "" || h.Desc == "" {
			continue
		}
		entries = append(entries,
			m.Theme.Highlight.Render(h.Key)+" "+m.Theme.Muted.Render("• "+h.Desc))
	}
	if len(entries) == 1 {
		return ""
	}
	return strings.Join(entries, " • ")
}

// fillViewport lays out the section blocks and loads them into the
// viewport, which scrolls whatever does not fit.
func (m *Model) fillViewport() {
	var blocks []string
	for _, section := range m.Keys.Sections() {
		if section.IsEmpty() {
			continue
		}
		if block, ok := m.sectionBlock(section); ok {
			blocks = append(blocks, block)
		}
	}

	content := m.layout(blocks)
	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

// layout picks the widest arrangement that fits: single column when it
// fits vertically, otherwise three then two columns when they fit
// horizontally, otherwise a scrolling single column.
func (m *Model) layout(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}

	single := m.withTitle(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if lipgloss.Height(single) <= m.Height-verticalMargin-1 {
		return single
	}

	for _, cols := range []int{3, 2} {
		if len(blocks) < cols {
			continue
		}
		candidate := m.withTitle(columnize(blocks, cols))
		if lipgloss.Width(candidate) <= m.Width-horizontalMargin {
			return candidate
		}
	}
	return single
}

// withTitle centers the modal heading over the laid-out content.
func (m *Model) withTitle(content string) string {
	title := m.Title
	if title == "" {
		title = "Help"
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Width(lipgloss.Width(content)).Render(title), content)
}

// columnize distributes blocks greedily, each into the currently
// shortest column, then joins the columns with gutters.
func columnize(blocks []string, cols int) string {
	columns := make([][]string, cols)
	heights := make([]int, cols)
	for _, block := range blocks {
		target := 0
		for i, h := range heights {
			if h < heights[target] {
				target = i
			}
		}
		columns[target] = append(columns[target], block)
		heights[target] += lipgloss.Height(block)
	}

	gutter := strings.Repeat(" ", gutterWidth)
	pieces := make([]string, 0, 2*cols-1)
	for i, col := range columns {
		if i > 0 {
			pieces = append(pieces, gutter)
		}
		pieces = append(pieces, lipgloss.JoinVertical(lipgloss.Left, col...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
}

// sectionBlock renders one section as a bordered box: an icon-and-name
// heading over a two-column binding table.
func (m *Model) sectionBlock(section keymap.Section) (string, bool) {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)
	descStyle := m.Theme.Muted.Italic(true)

	tbl := table.NewStyled()
	rows := 0
	for _, binding := range section.FilterEnabled() {
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		tbl = tbl.Row(keyStyle.Render(h.Key), descStyle.Render(h.Desc))
		rows++
	}
	if rows == 0 {
		return "", false
	}

	heading := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1).
		Render(sectionIcon(section.Name) + " " + section.Name)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, heading, tbl.String())), true
}

var sectionIcons = map[string]string{
	keymap.SectionNavigation: theme.IconNext,
	keymap.SectionDocument:   theme.IconDoc,
	keymap.SectionView:       theme.IconSlides,
	keymap.SectionSystem:     theme.IconInfo,
}

func sectionIcon(name string) string {
	if icon, ok := sectionIcons[name]; ok {
		return icon
	}
	return theme.IconBullet
}
