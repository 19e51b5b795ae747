package position

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecterntools/lectern/errors"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	frag, ok, err := store.Fragment("deck.md")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, frag)

	require.NoError(t, store.SetFragment("deck.md", "slide-3"))
	require.NoError(t, store.SetFragment("other.md", "slide-1"))

	frag, ok, err = store.Fragment("deck.md")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "slide-3", frag)

	// Documents in one directory share a single position file.
	data, err := os.ReadFile(filepath.Join(dir, ".lectern", "position.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "deck.md: slide-3")
	assert.Contains(t, string(data), "other.md: slide-1")

	require.NoError(t, store.ClearFragment("deck.md"))

	_, ok, err = store.Fragment("deck.md")
	require.NoError(t, err)
	assert.False(t, ok)

	frag, ok, err = store.Fragment("other.md")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "slide-1", frag)
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{ not yaml"), 0644))

	_, _, err := store.Fragment("deck.md")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePositionIO, errors.GetCode(err))
}

func TestStoreClearMissingKey(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.ClearFragment("deck.md"))

	// Clearing an unknown key doesn't create the file.
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestBinding(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	b := Bind(store, filepath.Join(dir, "deck.md"))
	assert.Equal(t, "deck.md", b.Key())

	_, ok := b.Fragment()
	assert.False(t, ok)

	require.NoError(t, b.SetFragment("slide-2"))
	frag, ok := b.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "slide-2", frag)

	require.NoError(t, b.ClearFragment())
	_, ok = b.Fragment()
	assert.False(t, ok)
}

func TestBindingSwallowsReadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{ not yaml"), 0644))

	b := Bind(store, "deck.md")
	frag, ok := b.Fragment()
	assert.False(t, ok)
	assert.Empty(t, frag)
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok := m.Fragment()
	assert.False(t, ok)

	require.NoError(t, m.SetFragment("slide-7"))
	frag, ok := m.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "slide-7", frag)

	require.NoError(t, m.ClearFragment())
	_, ok = m.Fragment()
	assert.False(t, ok)
}
