// Package presenter is the lectern TUI: a document reader with a slide
// deck layered on top. Docs mode scrolls the whole document; slides mode
// walks the deck one slide at a time, remembering the slide across runs.
package presenter

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/logging"
	"github.com/lecterntools/lectern/nav"
	"github.com/lecterntools/lectern/position"
	"github.com/lecterntools/lectern/tui/components/help"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/watch"
)

// Mode selects what the main area shows.
type Mode int

const (
	// ModeDocs scrolls the whole document.
	ModeDocs Mode = iota
	// ModeSlides walks the deck one slide at a time.
	ModeSlides
)

// Options configures a presenter.
type Options struct {
	Doc   *document.Document
	Keys  keymap.Map
	Theme *theme.Theme
	Mode  Mode

	// Position persists the current slide across runs. When nil the
	// slide is only remembered for the lifetime of the process.
	Position *position.Binding

	// Watch reloads the document when its directory changes.
	Watch         bool
	WatchDebounce time.Duration
	WatchIgnore   []string
}

// New builds the presenter model. Use Run to drive the program loop.
func New(opts Options) (*Model, error) {
	logger := logging.NewLogger("presenter")

	th := opts.Theme
	if th == nil {
		th = theme.DefaultTheme
	}

	var sink nav.Sink
	if opts.Position != nil {
		sink = opts.Position
	} else {
		sink = position.NewMemory()
	}

	m := &Model{
		doc:       opts.Doc,
		keys:      opts.Keys,
		theme:     th,
		mode:      ModeDocs,
		help:      help.New(opts.Keys),
		docView:   newViewport(opts.Keys),
		slideView: newViewport(opts.Keys),
		lastSlide: -1,
		seq:       keymap.NewSequenceState(),
		logger:    logger,
	}
	m.seqBindings = keymap.SequenceBindings(opts.Keys)
	m.nav = nav.New(func() *deck.Deck { return deck.Build(m.doc) }, sink)

	if opts.Watch {
		m.reloads = make(chan string, 1)
		w, err := watch.New(filepath.Dir(opts.Doc.Path), opts.WatchDebounce, opts.WatchIgnore, func(path string) {
			trySend(m.reloads, path)
		})
		if err != nil {
			return nil, err
		}
		m.watcher = w
	}

	if opts.Position != nil {
		m.fragments = make(chan string, 1)
		pw, err := position.NewWatcher(opts.Position, opts.WatchDebounce, opts.WatchIgnore, func(fragment string) {
			trySend(m.fragments, fragment)
		})
		if err != nil {
			// Cross-process slide sync degrades; everything else works.
			logger.WithError(err).Warn("Position watching disabled")
		} else {
			m.posWatcher = pw
		}
	}

	if opts.Mode == ModeSlides {
		m.enterSlides()
	}

	return m, nil
}

// Run presents the document and blocks until the user quits.
func (m *Model) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.start(ctx)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// start launches the background watchers. They stop when ctx is done.
func (m *Model) start(ctx context.Context) {
	if m.watcher != nil {
		go m.watcher.Start(ctx)
	}
	if m.posWatcher != nil {
		go m.posWatcher.Start(ctx)
	}
}

// newViewport builds a scrolling viewport driven by the user's own
// document bindings rather than the component defaults.
func newViewport(keys keymap.Map) viewport.Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	vp.KeyMap = viewport.KeyMap{
		Up:           keys.Up,
		Down:         keys.Down,
		PageUp:       keys.PageUp,
		PageDown:     keys.PageDown,
		HalfPageUp:   key.NewBinding(key.WithDisabled()),
		HalfPageDown: key.NewBinding(key.WithDisabled()),
	}
	return vp
}
