// Package notify provides change notification for configuration reloads.
//
// The notifier implements an observer pattern between the component that
// rebuilds configuration snapshots and the consumers holding the current
// one. Each reload produces a fresh immutable snapshot; subscribers swap
// their reference atomically on notification and the old snapshot is
// discarded. The notifier itself never mutates a snapshot.
package notify

import (
	"sync"
	"time"

	"github.com/dshills/keymapd/internal/config"
)

// Reload describes one reload attempt.
type Reload struct {
	// Path is the configuration file that was (re)compiled.
	Path string

	// Config is the new snapshot, or nil if compilation failed.
	Config *config.Config

	// Err is the fatal compilation error, if any.
	Err error

	// Time is when the reload completed.
	Time time.Time
}

// Observer is called for each reload. Observers run synchronously on the
// publishing goroutine and must not block.
type Observer func(Reload)

// Notifier fans reload events out to subscribed observers. The zero
// value is not usable; call New.
type Notifier struct {
	mu        sync.RWMutex
	observers map[int]Observer
	nextID    int
}

// New creates a notifier.
func New() *Notifier {
	return &Notifier{observers: make(map[int]Observer)}
}

// Subscribe registers an observer and returns its subscription id.
func (n *Notifier) Subscribe(o Observer) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = o
	return id
}

// Unsubscribe removes an observer by subscription id.
func (n *Notifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// Publish delivers a reload to every observer.
func (n *Notifier) Publish(r Reload) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		observers = append(observers, o)
	}
	n.mu.RUnlock()

	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	for _, o := range observers {
		o(r)
	}
}
