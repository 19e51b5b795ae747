// Package deck partitions a document's node sequence into slides.
//
// Boundaries fall at the first rank-1 heading, at every rank-2 heading,
// and immediately after every horizontal rule. Rules separate slides
// and are never slide content.
package deck

import (
	"sort"

	"github.com/lecterntools/lectern/document"
)

// Slide is an ordered, non-empty group of content nodes shown as one
// navigation unit. Index is its 0-based position in the deck.
type Slide struct {
	Index int             `json:"index"`
	Nodes []document.Node `json:"nodes"`
}

// Title returns the slide's first heading text, if it has one.
func (s Slide) Title() string {
	for _, n := range s.Nodes {
		if n.Title != "" {
			return n.Title
		}
	}
	return ""
}

// Deck is the ordered list of slides for one document.
type Deck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Len returns the slide count.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Build segments a document into a deck.
func Build(doc *document.Document) *Deck {
	return &Deck{
		Title:  doc.Title(),
		Slides: segment(doc.Nodes),
	}
}

// segment groups nodes into slides between consecutive boundaries.
// Rules are dropped from slide content; candidates left empty by rule
// removal or by duplicate boundaries are discarded.
func segment(nodes []document.Node) []Slide {
	bounds := boundaries(nodes)

	var slides []Slide
	for k := 0; k+1 < len(bounds); k++ {
		start, end := bounds[k], bounds[k+1]

		var group []document.Node
		for _, n := range nodes[start:end] {
			if n.Kind == document.KindRule {
				continue
			}
			group = append(group, n)
		}
		if len(group) == 0 {
			continue
		}

		slides = append(slides, Slide{Index: len(slides), Nodes: group})
	}
	return slides
}

// boundaries computes sorted slide-start indexes plus the terminal
// sentinel. Index 0 is always present so content preceding the first
// discovered boundary is never lost, and the list is sorted because a
// rank-1 heading may appear after a rank-2 one.
func boundaries(nodes []document.Node) []int {
	bounds := []int{0}

	for i, n := range nodes {
		if n.Kind == document.KindHeading1 {
			bounds = append(bounds, i)
			break
		}
	}

	for i, n := range nodes {
		switch n.Kind {
		case document.KindHeading2:
			bounds = append(bounds, i)
		case document.KindRule:
			bounds = append(bounds, i+1)
		}
	}

	bounds = append(bounds, len(nodes))
	sort.Ints(bounds)
	return bounds
}
