// Package watch provides the debounced filesystem watcher behind live
// reload and external position sync.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/logging"
)

// Watcher reports changes to files in a single directory. Notifications
// fire once writes settle, so a save that truncates and rewrites a file
// is seen complete, and paths matching an ignore pattern are dropped
// before they can reset the quiet window.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	matcher  *patternmatcher.PatternMatcher
	debounce time.Duration
	mu       sync.Mutex
	pending  string
	timer    *time.Timer
	logger   *logrus.Entry
	onChange func(path string)
}

// New creates a Watcher for dir. Ignore patterns follow .dockerignore
// syntax and are matched against paths relative to dir. The onChange
// callback receives the path of the changed file; when several files
// change inside one quiet window, the last one wins.
func New(dir string, debounce time.Duration, ignore []string, onChange func(string)) (*Watcher, error) {
	matcher, err := patternmatcher.New(ignore)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		watcher:  watcher,
		dir:      dir,
		matcher:  matcher,
		debounce: debounce,
		logger:   logging.NewLogger("watch"),
		onChange: onChange,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if w.ignored(event.Name) {
				continue
			}
			w.handleChange(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.Close()
			return
		}
	}
}

// ignored checks a changed path against the ignore patterns.
func (w *Watcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	match, err := w.matcher.MatchesOrParentMatches(rel)
	if err != nil {
		w.logger.WithError(err).Debugf("Ignore match failed for %s", rel)
		return false
	}
	if match {
		w.logger.Debugf("Ignored: %s", rel)
	}
	return match
}

// handleChange schedules a notification. Each event resets the timer so
// the callback runs after writes settle, with the file complete on disk.
func (w *Watcher) handleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = path
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	path := w.pending
	w.mu.Unlock()

	w.logger.Infof("Changed: %s", filepath.Base(path))

	if w.onChange != nil {
		w.onChange(path)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
