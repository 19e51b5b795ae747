package presenter

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/nav"
	"github.com/lecterntools/lectern/position"
	"github.com/lecterntools/lectern/tui/components/help"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/watch"
	"github.com/sirupsen/logrus"
)

// Model holds the presenter state.
type Model struct {
	doc   *document.Document
	nav   *nav.Navigator
	keys  keymap.Map
	theme *theme.Theme
	help  help.Model

	mode      Mode
	docView   viewport.Model // whole document (docs mode)
	slideView viewport.Model // current slide body (slides mode)
	lastSlide int

	seq         *keymap.SequenceState
	seqBindings []key.Binding

	watcher    *watch.Watcher
	posWatcher *position.Watcher
	reloads    chan string
	fragments  chan string

	width  int
	height int

	status     string
	statusKind statusKind

	logger *logrus.Entry
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusReload
	statusError
)

// Init arms the listeners for the background watchers.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.reloads != nil {
		cmds = append(cmds, m.listenReloads())
	}
	if m.fragments != nil {
		cmds = append(cmds, m.listenFragments())
	}
	return tea.Batch(cmds...)
}

// Nav exposes the navigator, e.g. for wiring a follow server before Run.
func (m *Model) Nav() *nav.Navigator {
	return m.nav
}

// Doc returns the currently loaded document.
func (m *Model) Doc() *document.Document {
	return m.doc
}

// Mode returns the active display mode.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) clearStatus() {
	m.status = ""
}
