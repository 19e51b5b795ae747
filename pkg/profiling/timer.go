// Package profiling provides opt-in CPU/heap profiles and a
// hierarchical wall-clock trace for command runs.
package profiling

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type noop struct{}

func (noop) Stop() {}

// span is one timed region. Children are appended in call order, so
// the summary reads in the order the command executed.
type span struct {
	name     string
	start    time.Time
	duration time.Duration
	children []*span
	tr       *tracer
}

func (s *span) Stop() {
	s.duration = time.Since(s.start)
	s.tr.pop(s)
}

// tracer keeps the open-span stack for the current run.
type tracer struct {
	mu      sync.Mutex
	enabled bool
	root    *span
	open    []*span
}

var global = &tracer{}

// Enable arms the global tracer. Spans started before Enable are
// dropped.
func Enable() {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.enabled {
		return
	}
	root := &span{start: time.Now(), tr: global}
	global.enabled = true
	global.root = root
	global.open = []*span{root}
}

// Start opens a named span nested under the innermost open span. The
// caller stops it, typically via defer.
func Start(name string) Stopper {
	global.mu.Lock()
	defer global.mu.Unlock()

	if !global.enabled {
		return noop{}
	}
	s := &span{name: name, start: time.Now(), tr: global}
	parent := global.open[len(global.open)-1]
	parent.children = append(parent.children, s)
	global.open = append(global.open, s)
	return s
}

func (t *tracer) pop(s *span) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled {
		return
	}
	// The root stays; spans may stop out of order under defer stacks.
	for i := len(t.open) - 1; i > 0; i-- {
		if t.open[i] == s {
			t.open = append(t.open[:i], t.open[i+1:]...)
			return
		}
	}
}

// Summarize prints the span tree with durations and shares of the
// total run time. It is a no-op when the tracer was never enabled.
func Summarize(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if !global.enabled || global.root == nil {
		return
	}
	if global.root.duration == 0 {
		global.root.duration = time.Since(global.root.start)
	}
	total := global.root.duration

	fmt.Fprintf(w, "\ntiming (total %v)\n", total.Round(time.Millisecond))
	var walk func(s *span, depth int)
	walk = func(s *span, depth int) {
		if s.name != "" {
			share := 0.0
			if total > 0 {
				share = float64(s.duration) / float64(total) * 100
			}
			fmt.Fprintf(w, "%*s%s %v (%.1f%%)\n",
				depth*2, "", s.name, s.duration.Round(100*time.Microsecond), share)
		}
		for _, c := range s.children {
			walk(c, depth+1)
		}
	}
	walk(global.root, -1)
}
