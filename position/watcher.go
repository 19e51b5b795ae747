package position

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lecterntools/lectern/logging"
	"github.com/lecterntools/lectern/watch"

	"github.com/sirupsen/logrus"
)

// Watcher reports external edits to a document's stored position. When
// the position file changes it re-reads the fragment for the bound
// document and emits it if it differs from the last emitted value, so
// echoes of the presenter's own writes stay quiet.
type Watcher struct {
	inner      *watch.Watcher
	binding    *Binding
	mu         sync.Mutex
	last       string
	onFragment func(fragment string)
	logger     *logrus.Entry
}

// NewWatcher creates a Watcher for the binding's position file. The
// onFragment callback receives each new fragment value.
func NewWatcher(binding *Binding, debounce time.Duration, ignore []string, onFragment func(string)) (*Watcher, error) {
	w := &Watcher{
		binding:    binding,
		onFragment: onFragment,
		logger:     logging.NewLogger("position"),
	}

	// Seed with the current value so startup doesn't replay it.
	if frag, ok := binding.Fragment(); ok {
		w.last = frag
	}

	// The directory must exist before fsnotify can watch it.
	dir := filepath.Dir(binding.store.Path())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	inner, err := watch.New(dir, debounce, ignore, w.handleChange)
	if err != nil {
		return nil, err
	}
	w.inner = inner

	return w, nil
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	w.inner.Start(ctx)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.inner.Close()
}

func (w *Watcher) handleChange(path string) {
	if filepath.Base(path) != fileName {
		return
	}

	fragment, ok := w.binding.Fragment()
	if !ok {
		return
	}

	w.mu.Lock()
	if fragment == w.last {
		w.mu.Unlock()
		return
	}
	w.last = fragment
	w.mu.Unlock()

	w.logger.Debugf("External position change for %s: %s", w.binding.Key(), fragment)
	w.onFragment(fragment)
}
