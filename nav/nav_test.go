package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/position"
)

// deckOf builds a deck with n slides, each an H2 plus a paragraph.
func deckOf(n int) *deck.Deck {
	nodes := make([]document.Node, 0, n*2)
	for i := 0; i < n; i++ {
		nodes = append(nodes,
			document.Node{ID: i * 2, Kind: document.KindHeading2, Level: 2, Title: fmt.Sprintf("Slide %d", i+1)},
			document.Node{ID: i*2 + 1, Kind: document.KindOther, Content: "body"},
		)
	}
	return deck.Build(&document.Document{Path: "deck.md", Nodes: nodes})
}

func activated(n int) (*Navigator, *position.Memory) {
	sink := position.NewMemory()
	nv := New(func() *deck.Deck { return deckOf(n) }, sink)
	nv.Activate()
	return nv, sink
}

func TestActivateBuildsOnce(t *testing.T) {
	builds := 0
	nv := New(func() *deck.Deck {
		builds++
		return deckOf(3)
	}, position.NewMemory())

	nv.Activate()
	nv.Deactivate()
	nv.Activate()

	assert.Equal(t, 1, builds)
	assert.Equal(t, 3, nv.Count())
}

func TestActivateResolvesStoredFragment(t *testing.T) {
	sink := position.NewMemory()
	require.NoError(t, sink.SetFragment("slide-3"))

	nv := New(func() *deck.Deck { return deckOf(5) }, sink)
	nv.Activate()
	assert.Equal(t, 2, nv.Current())

	// An external edit moves the presentation.
	nv.SyncFragment("slide-1")
	assert.Equal(t, 0, nv.Current())
}

func TestActivateIgnoresBadFragments(t *testing.T) {
	for _, frag := range []string{"", "garbage", "slide-0", "slide-", "slide-99", "Slide-2"} {
		t.Run(frag, func(t *testing.T) {
			sink := position.NewMemory()
			if frag != "" {
				require.NoError(t, sink.SetFragment(frag))
			}

			nv := New(func() *deck.Deck { return deckOf(5) }, sink)
			nv.Activate()
			assert.Equal(t, 0, nv.Current())
		})
	}
}

func TestShowIdempotent(t *testing.T) {
	nv, sink := activated(5)

	assert.True(t, nv.Show(2))
	first := nv.View()

	assert.True(t, nv.Show(2))
	assert.Equal(t, first, nv.View())

	frag, ok := sink.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "slide-3", frag)
}

func TestShowOutOfRangeIgnored(t *testing.T) {
	nv, sink := activated(3)
	nv.Show(1)

	assert.False(t, nv.Show(-1))
	assert.False(t, nv.Show(3))
	assert.False(t, nv.Show(99))

	assert.Equal(t, 1, nv.Current())
	frag, _ := sink.Fragment()
	assert.Equal(t, "slide-2", frag)
}

func TestShowBeforeBuildIgnored(t *testing.T) {
	nv := New(func() *deck.Deck { return deckOf(3) }, position.NewMemory())

	assert.False(t, nv.Show(0))
	assert.False(t, nv.Built())
}

func TestEndsAreNoOps(t *testing.T) {
	nv, _ := activated(3)

	nv.Prev()
	assert.Equal(t, 0, nv.Current())

	nv.Last()
	nv.Next()
	assert.Equal(t, 2, nv.Current())
}

func TestWalk(t *testing.T) {
	nv, _ := activated(4)

	nv.Next()
	nv.Next()
	assert.Equal(t, 2, nv.Current())
	assert.Equal(t, "3 of 4", nv.View().Counter)

	nv.Prev()
	assert.Equal(t, 1, nv.Current())

	nv.First()
	assert.Equal(t, 0, nv.Current())

	nv.Last()
	assert.Equal(t, 3, nv.Current())
}

func TestGoTo(t *testing.T) {
	nv, sink := activated(9)

	nv.GoTo(4)
	assert.Equal(t, 4, nv.Current())
	frag, _ := sink.Fragment()
	assert.Equal(t, "slide-5", frag)

	// Jumps past the deck are dropped.
	assert.False(t, nv.GoTo(9))
	assert.Equal(t, 4, nv.Current())
}

func TestSyncFragmentIgnoresInvalid(t *testing.T) {
	nv, _ := activated(3)
	nv.Show(1)

	nv.SyncFragment("bogus")
	nv.SyncFragment("slide-0")
	nv.SyncFragment("slide-42")
	assert.Equal(t, 1, nv.Current())

	nv.SyncFragment("slide-3")
	assert.Equal(t, 2, nv.Current())
}

func TestSyncFragmentIgnoredOutsidePresentation(t *testing.T) {
	nv, _ := activated(3)
	nv.Show(1)
	nv.Deactivate()

	nv.SyncFragment("slide-3")
	assert.Equal(t, 1, nv.Current())
}

func TestDeactivateClearsFragmentKeepsDeck(t *testing.T) {
	nv, sink := activated(5)
	nv.Show(3)

	nv.Deactivate()
	assert.False(t, nv.Active())
	_, ok := sink.Fragment()
	assert.False(t, ok)

	// The deck and index survive in memory.
	assert.True(t, nv.Built())
	assert.Equal(t, 3, nv.Current())

	// Re-entry finds no stored fragment and starts over.
	nv.Activate()
	assert.Equal(t, 0, nv.Current())
}

func TestDotsCappedAtTen(t *testing.T) {
	nv, _ := activated(15)
	nv.GoTo(4)

	v := nv.View()
	require.Len(t, v.Dots, MaxDots)
	for i, dot := range v.Dots {
		assert.Equal(t, i, dot.Index)
		assert.Equal(t, i == 4, dot.Active)
	}

	// Beyond the dot row no dot is active.
	nv.GoTo(12)
	for _, dot := range nv.View().Dots {
		assert.False(t, dot.Active)
	}
}

func TestViewSmallDeck(t *testing.T) {
	nv, _ := activated(3)

	v := nv.View()
	assert.Equal(t, "1 of 3", v.Counter)
	assert.False(t, v.PrevEnabled)
	assert.True(t, v.NextEnabled)
	assert.Len(t, v.Dots, 3)
	assert.Equal(t, "slide-1", v.Fragment)

	nv.Last()
	v = nv.View()
	assert.Equal(t, "3 of 3", v.Counter)
	assert.True(t, v.PrevEnabled)
	assert.False(t, v.NextEnabled)
}

func TestReloadClampsIndex(t *testing.T) {
	nv, sink := activated(5)
	nv.Last()

	nv.Reload(deckOf(2))
	assert.Equal(t, 1, nv.Current())
	frag, _ := sink.Fragment()
	assert.Equal(t, "slide-2", frag)

	nv.Reload(deckOf(0))
	assert.Equal(t, 0, nv.Current())
	assert.Equal(t, "0 of 0", nv.View().Counter)
}

func TestReloadOutsidePresentationWritesNoFragment(t *testing.T) {
	sink := position.NewMemory()
	nv := New(func() *deck.Deck { return deckOf(3) }, sink)

	nv.Reload(deckOf(3))
	assert.True(t, nv.Built())

	_, ok := sink.Fragment()
	assert.False(t, ok)
}

func TestEmptyDeck(t *testing.T) {
	nv, _ := activated(0)

	assert.Equal(t, 0, nv.Count())
	assert.Nil(t, nv.Slide())

	nv.Show(0)
	nv.Next()
	nv.Prev()
	nv.Last()

	v := nv.View()
	assert.Equal(t, "0 of 0", v.Counter)
	assert.Empty(t, v.Dots)
}

func TestNotify(t *testing.T) {
	sink := position.NewMemory()
	nv := New(func() *deck.Deck { return deckOf(3) }, sink)

	var views []View
	nv.Notify = func(v View) { views = append(views, v) }

	nv.Activate()
	nv.Next()
	nv.Deactivate()

	require.Len(t, views, 3)
	assert.True(t, views[0].Active)
	assert.Equal(t, 0, views[0].Index)
	assert.Equal(t, 1, views[1].Index)
	assert.False(t, views[2].Active)
}

func TestSlide(t *testing.T) {
	nv, _ := activated(3)
	nv.Next()

	slide := nv.Slide()
	require.NotNil(t, slide)
	assert.Equal(t, 1, slide.Index)
	assert.Equal(t, "Slide 2", slide.Title())
}
