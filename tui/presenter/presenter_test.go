package presenter

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/position"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fourSlideDoc = `# Deck

intro

## One

alpha

---

beta

## Two

gamma
`

const twoSlideDoc = `# Deck

intro

## Only

alpha
`

func loadDoc(t *testing.T, content string) *document.Document {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	doc, err := document.Load(path)
	require.NoError(t, err)
	return doc
}

func newModel(t *testing.T, doc *document.Document) *Model {
	t.Helper()
	m, err := New(Options{Doc: doc, Keys: keymap.DefaultArrows()})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestStartsInDocsMode(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))

	assert.Equal(t, ModeDocs, m.Mode())
	assert.False(t, m.Nav().Active())
	assert.Contains(t, m.View(), "Docs")
	assert.Contains(t, m.View(), "Deck")
}

func TestToggleMode(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))

	press(m, keyType(tea.KeyTab))
	assert.Equal(t, ModeSlides, m.Mode())
	assert.True(t, m.Nav().Active())
	assert.Equal(t, "1 of 4", m.Nav().View().Counter)
	assert.Contains(t, m.View(), "1 of 4")

	press(m, keyType(tea.KeyTab))
	assert.Equal(t, ModeDocs, m.Mode())
	assert.False(t, m.Nav().Active())
}

func TestSlideWalk(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))
	press(m, keyType(tea.KeyTab))

	press(m, keyType(tea.KeyRight))
	assert.Equal(t, "2 of 4", m.Nav().View().Counter)

	press(m, keyType(tea.KeyLeft))
	assert.Equal(t, "1 of 4", m.Nav().View().Counter)

	// Stepping back off the first slide changes nothing.
	press(m, keyType(tea.KeyLeft))
	assert.Equal(t, "1 of 4", m.Nav().View().Counter)

	press(m, keyType(tea.KeyEnd))
	assert.Equal(t, "4 of 4", m.Nav().View().Counter)

	press(m, keyType(tea.KeyRight))
	assert.Equal(t, "4 of 4", m.Nav().View().Counter)

	press(m, keyType(tea.KeyHome))
	assert.Equal(t, "1 of 4", m.Nav().View().Counter)
}

func TestJumpDigits(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))
	press(m, keyType(tea.KeyTab))

	press(m, keyRune('3'))
	assert.Equal(t, 2, m.Nav().Current())

	// Out of range, silently dropped.
	press(m, keyRune('9'))
	assert.Equal(t, 2, m.Nav().Current())
}

func TestEscReturnsToDocsAndResets(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))

	press(m, keyType(tea.KeyTab))
	press(m, keyType(tea.KeyRight))
	assert.Equal(t, 1, m.Nav().Current())

	press(m, keyType(tea.KeyEsc))
	assert.Equal(t, ModeDocs, m.Mode())
	assert.False(t, m.Nav().Active())

	// An in-run exit clears the stored slide, so re-entry starts over.
	press(m, keyType(tea.KeyTab))
	assert.Equal(t, 0, m.Nav().Current())
}

func TestResumeFromStoredPosition(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	binding := position.Bind(position.NewStore(filepath.Dir(doc.Path)), doc.Path)
	require.NoError(t, binding.SetFragment("slide-3"))

	m, err := New(Options{Doc: doc, Keys: keymap.DefaultArrows(), Position: binding})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(m, keyType(tea.KeyTab))
	assert.Equal(t, 2, m.Nav().Current())
}

func TestQuitKeepsStoredPosition(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	binding := position.Bind(position.NewStore(filepath.Dir(doc.Path)), doc.Path)

	m, err := New(Options{Doc: doc, Keys: keymap.DefaultArrows(), Position: binding})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(m, keyType(tea.KeyTab))
	press(m, keyRune('3'))

	cmd := press(m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	frag, ok := binding.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "slide-3", frag)
}

func TestFragmentChangedWhilePresenting(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))
	press(m, keyType(tea.KeyTab))

	m.Update(fragmentChangedMsg{fragment: "slide-4"})
	assert.Equal(t, 3, m.Nav().Current())

	// Garbage is dropped.
	m.Update(fragmentChangedMsg{fragment: "slide-abc"})
	assert.Equal(t, 3, m.Nav().Current())
}

func TestFragmentChangedIgnoredInDocsMode(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))

	m.Update(fragmentChangedMsg{fragment: "slide-2"})
	assert.Equal(t, 0, m.Nav().Current())
	assert.False(t, m.Nav().Built())
}

func TestReloadApplied(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))
	press(m, keyType(tea.KeyTab))
	press(m, keyType(tea.KeyEnd))
	assert.Equal(t, 3, m.Nav().Current())

	m.Update(docReloadedMsg{doc: loadDoc(t, twoSlideDoc)})

	// The deck shrank; the slide clamps to the new last slide.
	assert.Equal(t, "2 of 2", m.Nav().View().Counter)
	assert.Equal(t, 1, m.Nav().Current())
	assert.Contains(t, m.status, "Reloaded")
}

func TestReloadFailureKeepsDocument(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	m := newModel(t, doc)
	press(m, keyType(tea.KeyTab))

	m.Update(reloadFailedMsg{err: fmt.Errorf("boom")})

	assert.Equal(t, "1 of 4", m.Nav().View().Counter)
	assert.Same(t, doc, m.Doc())
	assert.Contains(t, m.status, "reload failed")
}

func TestReloadCmdReadsDisk(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	m := newModel(t, doc)

	require.NoError(t, os.WriteFile(doc.Path, []byte(twoSlideDoc), 0o644))

	msg := m.reloadCmd()()
	reloaded, ok := msg.(docReloadedMsg)
	require.True(t, ok, "expected docReloadedMsg, got %T", msg)
	assert.Len(t, reloaded.doc.Nodes, 4)
}

func TestHelpOverlay(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))

	press(m, keyRune('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "Navigation")

	press(m, keyType(tea.KeyEsc))
	assert.False(t, m.help.ShowAll)
	assert.Equal(t, ModeDocs, m.Mode())
}

func TestVimSequenceFirst(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	m, err := New(Options{Doc: doc, Keys: keymap.DefaultVim()})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(m, keyType(tea.KeyTab))
	press(m, keyType(tea.KeyEnd))
	assert.Equal(t, 3, m.Nav().Current())

	press(m, keyRune('g'))
	assert.Equal(t, 3, m.Nav().Current(), "first g should be pending")
	press(m, keyRune('g'))
	assert.Equal(t, 0, m.Nav().Current())
}

func TestVimSingleKeysDispatchImmediately(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	m, err := New(Options{Doc: doc, Keys: keymap.DefaultVim()})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	press(m, keyType(tea.KeyTab))

	press(m, keyRune('l'))
	assert.Equal(t, 1, m.Nav().Current())

	press(m, keyRune('h'))
	assert.Equal(t, 0, m.Nav().Current())
}

func TestVimAbandonedSequenceStillDispatches(t *testing.T) {
	doc := loadDoc(t, fourSlideDoc)
	m, err := New(Options{Doc: doc, Keys: keymap.DefaultVim()})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	press(m, keyType(tea.KeyTab))

	press(m, keyRune('g'))
	press(m, keyRune('l'))
	assert.Equal(t, 1, m.Nav().Current())
}

func TestSmallTerminal(t *testing.T) {
	m := newModel(t, loadDoc(t, fourSlideDoc))
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestDigitKey(t *testing.T) {
	assert.Equal(t, 5, digitKey(keyRune('5')))
	assert.Equal(t, 0, digitKey(keyRune('0')))
	assert.Equal(t, 0, digitKey(keyType(tea.KeyLeft)))
}
