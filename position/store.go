// Package position persists the last shown slide of each document, so a
// deck reopens where it was left and external tools can steer a running
// presentation by editing the position file.
package position

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lecterntools/lectern/errors"
	"github.com/lecterntools/lectern/logging"
)

const (
	dirName  = ".lectern"
	fileName = "position.yml"
)

// Store reads and writes slide positions for the documents in one
// directory. Positions live in .lectern/position.yml next to the
// documents, keyed by file name, so decks in the same project share a
// single file and separate projects stay independent.
type Store struct {
	dir string
}

// NewStore creates a Store for the documents in dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of the position file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dirName, fileName)
}

type positions map[string]string

// load reads the position file. Returns an empty map if the file
// doesn't exist.
func (s *Store) load() (positions, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return make(positions), nil
		}
		return nil, errors.PositionIO(s.Path(), err)
	}

	var p positions
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.PositionIO(s.Path(), err)
	}

	if p == nil {
		p = make(positions)
	}

	return p, nil
}

// save writes the position file, creating the .lectern directory if
// needed.
func (s *Store) save(p positions) error {
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		return errors.PositionIO(s.Path(), err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.PositionIO(s.Path(), err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return errors.PositionIO(s.Path(), err)
	}

	return nil
}

// Fragment returns the stored fragment for a document key. The second
// return is false when no position is stored.
func (s *Store) Fragment(key string) (string, bool, error) {
	p, err := s.load()
	if err != nil {
		return "", false, err
	}

	frag, ok := p[key]
	return frag, ok, nil
}

// SetFragment stores the fragment for a document key.
func (s *Store) SetFragment(key, fragment string) error {
	p, err := s.load()
	if err != nil {
		return err
	}

	p[key] = fragment
	return s.save(p)
}

// ClearFragment removes the stored position for a document key.
func (s *Store) ClearFragment(key string) error {
	p, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := p[key]; !ok {
		return nil
	}

	delete(p, key)
	return s.save(p)
}

// Binding scopes a Store to one document. Reads swallow store errors so
// a corrupt or unreadable position file never blocks navigation; writes
// report them.
type Binding struct {
	store *Store
	key   string
}

// Bind creates a Binding for the document at docPath. The document's
// base name is the key in the position file.
func Bind(store *Store, docPath string) *Binding {
	return &Binding{store: store, key: filepath.Base(docPath)}
}

// Key returns the document's key in the position file.
func (b *Binding) Key() string {
	return b.key
}

// Fragment returns the stored fragment for the bound document.
func (b *Binding) Fragment() (string, bool) {
	frag, ok, err := b.store.Fragment(b.key)
	if err != nil {
		logging.NewLogger("position").WithError(err).Debug("Failed to read position file")
		return "", false
	}
	return frag, ok
}

// SetFragment stores the fragment for the bound document.
func (b *Binding) SetFragment(fragment string) error {
	return b.store.SetFragment(b.key, fragment)
}

// ClearFragment removes the stored position for the bound document.
func (b *Binding) ClearFragment() error {
	return b.store.ClearFragment(b.key)
}

// Memory holds a fragment in process memory instead of on disk. It
// backs --no-position runs.
type Memory struct {
	mu       sync.Mutex
	fragment string
	set      bool
}

// NewMemory creates an empty in-memory position.
func NewMemory() *Memory {
	return &Memory{}
}

// Fragment returns the held fragment.
func (m *Memory) Fragment() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fragment, m.set
}

// SetFragment replaces the held fragment.
func (m *Memory) SetFragment(fragment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fragment = fragment
	m.set = true
	return nil
}

// ClearFragment drops the held fragment.
func (m *Memory) ClearFragment() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fragment = ""
	m.set = false
	return nil
}
