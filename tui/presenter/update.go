package presenter

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/tui/keymap"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case docChangedMsg:
		// Any surviving event in the document directory triggers a
		// reload; the loader reads the file fresh either way.
		return m, tea.Batch(m.reloadCmd(), m.listenReloads())

	case docReloadedMsg:
		m.applyReload(msg.doc)
		return m, nil

	case reloadFailedMsg:
		m.logger.WithError(msg.err).Warn("Reload failed")
		m.setStatus(statusError, "reload failed: "+msg.err.Error())
		return m, nil

	case fragmentChangedMsg:
		m.nav.SyncFragment(msg.fragment)
		m.syncSlideView(true)
		return m, m.listenFragments()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help modal swallows every key until closed.
	if m.help.ShowAll {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	m.clearStatus()

	// Multi-key sequences (gg on the vim preset).
	if len(m.seqBindings) > 0 {
		result, _ := m.seq.Process(msg, m.seqBindings...)
		switch result {
		case keymap.SequenceMatch:
			m.seq.Clear()
			m.gotoFirst()
			return m, nil
		case keymap.SequencePending:
			return m, nil
		}
		m.seq.Clear()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// Quitting keeps the stored slide so the next run resumes there.
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == ModeSlides {
			m.exitSlides()
		} else {
			m.enterSlides()
		}
		return m, nil

	case key.Matches(msg, m.keys.ExitSlides):
		if m.mode == ModeSlides {
			m.exitSlides()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()
	}

	if m.mode == ModeSlides {
		return m.handleSlidesKey(msg)
	}
	return m.handleDocsKey(msg)
}

func (m *Model) handleSlidesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.nav.Prev()
	case key.Matches(msg, m.keys.Next):
		m.nav.Next()
	case key.Matches(msg, m.keys.First):
		m.nav.First()
	case key.Matches(msg, m.keys.Last):
		m.nav.Last()
	case key.Matches(msg, m.keys.Jump):
		if n := digitKey(msg); n > 0 {
			m.nav.GoTo(n - 1)
		}
	default:
		// Long slides scroll like a document.
		var cmd tea.Cmd
		m.slideView, cmd = m.slideView.Update(msg)
		return m, cmd
	}
	m.syncSlideView(true)
	return m, nil
}

func (m *Model) handleDocsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.First):
		m.docView.GotoTop()
	case key.Matches(msg, m.keys.Last):
		m.docView.GotoBottom()
	default:
		var cmd tea.Cmd
		m.docView, cmd = m.docView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// enterSlides activates slide navigation. The deck is built on first
// entry and the stored fragment decides the starting slide.
func (m *Model) enterSlides() {
	m.mode = ModeSlides
	m.nav.Activate()
	m.lastSlide = -1
	m.syncSlideView(true)
}

// exitSlides returns to the document view. The stored fragment is
// cleared, so re-entering within this run starts over at slide one.
func (m *Model) exitSlides() {
	m.nav.Deactivate()
	m.mode = ModeDocs
}

// gotoFirst is the sequence-matched action: top of the active surface.
func (m *Model) gotoFirst() {
	if m.mode == ModeSlides {
		m.nav.First()
		m.syncSlideView(true)
		return
	}
	m.docView.GotoTop()
}

// applyReload swaps in a freshly parsed document and rebuilds the deck.
// The navigator clamps the current slide if the deck shrank.
func (m *Model) applyReload(doc *document.Document) {
	m.doc = doc
	m.nav.Reload(deck.Build(doc))
	m.docView.SetContent(renderDocument(doc, m.theme, m.docView.Width))
	m.syncSlideView(false)
	m.setStatus(statusReload, "Reloaded "+time.Now().Format("15:04:05"))
}

// syncSlideView refreshes the slide viewport. The scroll position resets
// to the top only when the slide actually changed.
func (m *Model) syncSlideView(resetTop bool) {
	if m.mode != ModeSlides {
		return
	}
	changed := m.nav.Current() != m.lastSlide
	m.lastSlide = m.nav.Current()
	m.slideView.SetContent(m.renderCurrentSlide())
	if resetTop && changed {
		m.slideView.GotoTop()
	}
}

// layout resizes both viewports and re-renders their width-wrapped
// content. The docs viewport is narrower by the scrollbar gutter.
func (m *Model) layout() {
	w, h := m.contentWidth(), m.contentHeight()
	dw := w - scrollbarGutter
	if dw < 1 {
		dw = 1
	}
	m.docView.Width = dw
	m.docView.Height = h
	m.slideView.Width = w
	m.slideView.Height = h
	m.docView.SetContent(renderDocument(m.doc, m.theme, dw))
	m.syncSlideView(false)
}

func (m *Model) contentWidth() int {
	w := m.width - 2*mainPadding
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// digitKey returns the 1-9 value of a jump key press, or 0.
func digitKey(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}
