package presenter

import (
	"strings"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/tui/theme"
)

// renderDocument renders every node in reading order for docs mode.
func renderDocument(doc *document.Document, th *theme.Theme, width int) string {
	blocks := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		blocks = append(blocks, renderNode(n, th, width))
	}
	return strings.Join(blocks, "\n\n")
}

// renderSlide renders one slide's nodes for slides mode.
func renderSlide(s *deck.Slide, th *theme.Theme, width int) string {
	blocks := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		blocks = append(blocks, renderNode(n, th, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderCurrentSlide() string {
	s := m.nav.Slide()
	if s == nil {
		return m.theme.Muted.Render("No slides.")
	}
	return renderSlide(s, m.theme, m.contentWidth())
}

// renderNode renders a single content node. Headings of rank three and
// deeper are payload, styled but never slide boundaries.
func renderNode(n document.Node, th *theme.Theme, width int) string {
	switch {
	case n.Kind == document.KindHeading1:
		return th.SlideTitle.Width(width).Render(n.Title)
	case n.Kind == document.KindHeading2:
		return th.SlideHeading.Width(width).Render(n.Title)
	case n.Kind == document.KindRule:
		return th.Muted.Render(strings.Repeat("─", min(width, 40)))
	case n.Level >= 3 && n.Title != "":
		return th.Bold.Width(width).Render(n.Title)
	case n.Code:
		return th.CodeBlock.Render(n.Content)
	default:
		return th.SlideBody.Width(width).Render(n.Content)
	}
}
