package presenter

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lecterntools/lectern/document"
)

// docChangedMsg reports a debounced file change in the document directory.
type docChangedMsg struct {
	path string
}

// docReloadedMsg carries a freshly parsed document.
type docReloadedMsg struct {
	doc *document.Document
}

// reloadFailedMsg reports a reload that could not be read or parsed; the
// last good document stays on screen.
type reloadFailedMsg struct {
	err error
}

// fragmentChangedMsg reports an external change to the stored fragment.
type fragmentChangedMsg struct {
	fragment string
}

// listenReloads waits for the next document change event.
func (m *Model) listenReloads() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-m.reloads
		if !ok {
			return nil
		}
		return docChangedMsg{path: path}
	}
}

// listenFragments waits for the next external fragment change.
func (m *Model) listenFragments() tea.Cmd {
	return func() tea.Msg {
		fragment, ok := <-m.fragments
		if !ok {
			return nil
		}
		return fragmentChangedMsg{fragment: fragment}
	}
}

// reloadCmd re-reads the document from disk off the UI loop.
func (m *Model) reloadCmd() tea.Cmd {
	path := m.doc.Path
	return func() tea.Msg {
		doc, err := document.Load(path)
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return docReloadedMsg{doc: doc}
	}
}

// trySend queues v without ever blocking the watcher goroutine. When the
// buffer is full the stale value is dropped; only the latest matters.
func trySend(ch chan string, v string) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
