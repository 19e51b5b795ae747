// Package nav holds the slide navigation state machine: the current
// slide, presentation-mode activation, and the fragment protocol that
// keeps the position store in sync.
package nav

import (
	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/logging"
)

// Sink stores the position fragment for the presented document.
type Sink interface {
	Fragment() (string, bool)
	SetFragment(fragment string) error
	ClearFragment() error
}

// Navigator owns the navigation state for one document. Invalid
// requests are dropped silently so manual edits to the position file
// can never break a running presentation; sink write failures are
// logged and otherwise ignored for the same reason.
type Navigator struct {
	build   func() *deck.Deck
	deck    *deck.Deck
	built   bool
	current int
	active  bool
	sink    Sink
	logger  *logrus.Entry

	// Notify, when set, receives a snapshot after every state change.
	Notify func(View)
}

// New creates a Navigator. The build function runs once, on first
// activation, and produces the deck to navigate.
func New(build func() *deck.Deck, sink Sink) *Navigator {
	return &Navigator{
		build:  build,
		sink:   sink,
		logger: logging.NewLogger("nav"),
	}
}

// Activate enters presentation mode. The deck is built on first entry
// only. The stored fragment picks the slide to show when it parses to a
// valid index; otherwise the presentation starts at the first slide.
func (n *Navigator) Activate() {
	if !n.built {
		n.deck = n.build()
		n.built = true
	}
	n.active = true

	target := 0
	if frag, ok := n.sink.Fragment(); ok {
		if idx, valid := ParseFragment(frag); valid && idx < n.deck.Len() {
			target = idx
		}
	}

	if n.deck.Len() == 0 {
		n.current = 0
		n.notify()
		return
	}
	n.show(target)
}

// Deactivate leaves presentation mode. The stored fragment is cleared;
// the deck and the current index stay in memory.
func (n *Navigator) Deactivate() {
	if !n.active {
		return
	}
	n.active = false

	if err := n.sink.ClearFragment(); err != nil {
		n.logger.WithError(err).Warn("Failed to clear stored position")
	}
	n.notify()
}

// Show displays the slide at index and reports whether it did.
// Requests outside the deck are ignored.
func (n *Navigator) Show(index int) bool {
	if !n.built || index < 0 || index >= n.deck.Len() {
		return false
	}
	n.show(index)
	return true
}

// show applies a valid index unconditionally, so repeating the current
// index re-establishes the same observable state.
func (n *Navigator) show(index int) {
	n.current = index

	if n.active {
		if err := n.sink.SetFragment(FormatFragment(index)); err != nil {
			n.logger.WithError(err).Warn("Failed to store position")
		}
	}
	n.notify()
}

// Next advances one slide. At the last slide it does nothing.
func (n *Navigator) Next() {
	n.Show(n.current + 1)
}

// Prev steps back one slide. At the first slide it does nothing.
func (n *Navigator) Prev() {
	n.Show(n.current - 1)
}

// GoTo is an alias for Show.
func (n *Navigator) GoTo(index int) bool {
	return n.Show(index)
}

// First jumps to the first slide.
func (n *Navigator) First() {
	n.Show(0)
}

// Last jumps to the last slide.
func (n *Navigator) Last() {
	if !n.built {
		return
	}
	n.Show(n.deck.Len() - 1)
}

// SyncFragment applies an externally changed fragment while in
// presentation mode. Malformed or out-of-range fragments leave the
// state unchanged.
func (n *Navigator) SyncFragment(fragment string) {
	if !n.active {
		return
	}
	idx, ok := ParseFragment(fragment)
	if !ok {
		return
	}
	n.Show(idx)
}

// Reload replaces the deck after the document changed, keeping the
// current slide where it still exists and clamping to the final slide
// otherwise.
func (n *Navigator) Reload(d *deck.Deck) {
	n.deck = d
	n.built = true

	if n.deck.Len() == 0 {
		n.current = 0
		n.notify()
		return
	}
	if n.current >= n.deck.Len() {
		n.current = n.deck.Len() - 1
	}
	n.show(n.current)
}

// Current returns the current slide index.
func (n *Navigator) Current() int {
	return n.current
}

// Count returns the slide count, or zero before the deck is built.
func (n *Navigator) Count() int {
	if !n.built {
		return 0
	}
	return n.deck.Len()
}

// Built reports whether the deck has been built.
func (n *Navigator) Built() bool {
	return n.built
}

// Active reports whether presentation mode is on.
func (n *Navigator) Active() bool {
	return n.active
}

// Slide returns the current slide, or nil when the deck is empty or
// unbuilt.
func (n *Navigator) Slide() *deck.Slide {
	if !n.built || n.current >= n.deck.Len() {
		return nil
	}
	return &n.deck.Slides[n.current]
}

func (n *Navigator) notify() {
	if n.Notify != nil {
		n.Notify(n.View())
	}
}
