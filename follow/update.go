package follow

import (
	"strings"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/nav"
)

// Update types.
const (
	// UpdateSlide carries the slide the presenter is on.
	UpdateSlide = "slide"
	// UpdateDocs says the presenter left slides mode.
	UpdateDocs = "docs"
)

// Update is one state push to followers. It is a full snapshot, not a
// delta: the newest update always supersedes everything before it.
type Update struct {
	Type      string `json:"type"`
	Index     int    `json:"index"`
	Count     int    `json:"count"`
	Counter   string `json:"counter"`
	Fragment  string `json:"fragment,omitempty"`
	Title     string `json:"title"`
	HTML      string `json:"html,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// FromView composes the follower payload for a navigation snapshot.
// The slide, when present, contributes its heading as the title and
// its prerendered HTML as the body; title is the fallback shown while
// the presenter is in docs mode or on an untitled slide.
func FromView(v nav.View, slide *deck.Slide, title string) Update {
	u := Update{
		Type:     UpdateDocs,
		Index:    v.Index,
		Count:    v.Count,
		Counter:  v.Counter,
		Fragment: v.Fragment,
		Title:    title,
	}
	if !v.Active {
		return u
	}

	u.Type = UpdateSlide
	if slide != nil {
		if t := slide.Title(); t != "" {
			u.Title = t
		}
		u.HTML = slideHTML(slide)
	}
	return u
}

// slideHTML joins the per-node HTML produced at document load.
func slideHTML(s *deck.Slide) string {
	parts := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.HTML == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(n.HTML))
	}
	return strings.Join(parts, "\n")
}
