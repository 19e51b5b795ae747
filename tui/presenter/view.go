package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/tui/utils/scrollbar"
)

const (
	headerHeight = 2 // title line plus rule
	footerHeight = 3 // rule, navigation line, help line
	mainPadding  = 2

	// scrollbarGutter is the space plus bar column docs mode reserves at
	// the right edge.
	scrollbarGutter = 2
)

// View renders the full presenter screen.
func (m *Model) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small. Please resize."
	}

	if m.help.ShowAll {
		return m.help.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.mainView(),
		m.footerView(),
	)
}

// headerView shows the document title and the mode selector.
func (m *Model) headerView() string {
	title := m.theme.Highlight.Render(m.doc.Title())

	docsTab := m.theme.ModeInactive.Render("Docs")
	slidesTab := m.theme.ModeInactive.Render("Slides")
	if m.mode == ModeSlides {
		slidesTab = m.theme.ModeActive.Render("Slides")
	} else {
		docsTab = m.theme.ModeActive.Render("Docs")
	}
	tabs := docsTab + " " + slidesTab

	gap := m.width - 2*mainPadding - lipgloss.Width(title) - lipgloss.Width(tabs)
	if gap < 1 {
		gap = 1
	}

	line := pad() + title + strings.Repeat(" ", gap) + tabs
	return m.theme.HeaderBar.Width(m.width).Render(line)
}

func (m *Model) mainView() string {
	var body string
	if m.mode == ModeSlides {
		body = m.slideView.View()
	} else {
		body = scrollbar.Overlay(&m.docView)
	}
	return lipgloss.NewStyle().Padding(0, mainPadding).Render(body)
}

// footerView stacks the navigation line and the help hint above a rule.
func (m *Model) footerView() string {
	var navLine string
	if m.mode == ModeSlides {
		navLine = m.slidesFooterLine()
	} else {
		navLine = m.docsFooterLine()
	}

	helpLine := m.help.View()
	if m.status != "" {
		style := m.theme.Info
		icon := theme.IconInfo
		switch m.statusKind {
		case statusReload:
			icon = theme.IconReload
		case statusError:
			style = m.theme.Error
			icon = theme.IconError
		}
		helpLine = style.Render(icon + " " + m.status)
	}
	if m.seq.IsPending() {
		// Partial sequence readout, vim showcmd style.
		helpLine += m.theme.Muted.Render("  " + m.seq.Buffer())
	}

	clip := lipgloss.NewStyle().MaxWidth(m.width - mainPadding)
	content := clip.Render(navLine) + "\n" + clip.Render(pad()+helpLine)
	return m.theme.FooterBar.Width(m.width).Render(content)
}

// slidesFooterLine is the deck position readout: arrows at the edges,
// one dot per slide (capped) and the counter in the middle.
func (m *Model) slidesFooterLine() string {
	v := m.nav.View()

	prev := m.theme.NavDisabled.Render(theme.IconPrev)
	if v.PrevEnabled {
		prev = m.theme.NavEnabled.Render(theme.IconPrev)
	}
	next := m.theme.NavDisabled.Render(theme.IconNext)
	if v.NextEnabled {
		next = m.theme.NavEnabled.Render(theme.IconNext)
	}

	dots := make([]string, 0, len(v.Dots))
	for _, d := range v.Dots {
		if d.Active {
			dots = append(dots, m.theme.DotActive.Render("●"))
		} else {
			dots = append(dots, m.theme.DotInactive.Render("○"))
		}
	}

	center := strings.Join(dots, " ")
	if center != "" {
		center += "  "
	}
	center += m.theme.Counter.Render(v.Counter)

	width := m.width - 2*mainPadding
	gap := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(center)
	left := gap / 2
	right := gap - left
	if left < 1 {
		left = 1
	}
	if right < 1 {
		right = 1
	}

	return pad() + prev + strings.Repeat(" ", left) + center + strings.Repeat(" ", right) + next
}

// docsFooterLine shows how far the reader has scrolled.
func (m *Model) docsFooterLine() string {
	percent := fmt.Sprintf("%3.0f%%", m.docView.ScrollPercent()*100)
	return pad() + m.theme.Counter.Render(percent)
}

func pad() string {
	return strings.Repeat(" ", mainPadding)
}
