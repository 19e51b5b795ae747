package position

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherEmitsExternalChange(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	binding := Bind(store, filepath.Join(dir, "deck.md"))
	require.NoError(t, binding.SetFragment("slide-1"))

	got := make(chan string, 1)
	w, err := NewWatcher(binding, 20*time.Millisecond, nil, func(frag string) {
		select {
		case got <- frag:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, NewStore(dir).SetFragment("deck.md", "slide-4"))

	select {
	case frag := <-got:
		assert.Equal(t, "slide-4", frag)
	case <-time.After(2 * time.Second):
		t.Fatal("no fragment emitted for external change")
	}
}

func TestWatcherStaysQuietForOtherDocuments(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	binding := Bind(store, filepath.Join(dir, "deck.md"))
	require.NoError(t, binding.SetFragment("slide-2"))

	got := make(chan string, 1)
	w, err := NewWatcher(binding, 20*time.Millisecond, nil, func(frag string) {
		select {
		case got <- frag:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	// A write for a different document changes the shared file but not
	// this binding's fragment.
	require.NoError(t, NewStore(dir).SetFragment("other.md", "slide-9"))

	select {
	case frag := <-got:
		t.Fatalf("unexpected fragment %q", frag)
	case <-time.After(300 * time.Millisecond):
	}
}
