// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors configuration files for changes and triggers
// reload callbacks when modifications are detected. Bursts of filesystem
// events for the same path (editors typically write, truncate and rename
// in quick succession) are coalesced into a single callback.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event represents a file change event.
type Event struct {
	// Path is the path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event was delivered.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// DefaultDebounce is the settle window for coalescing event bursts.
const DefaultDebounce = 50 * time.Millisecond

// Watcher monitors files for changes.
type Watcher struct {
	mu sync.Mutex

	fw       *fsnotify.Watcher
	handlers []Handler
	debounce time.Duration

	// pending holds the settle timer for each path with unflushed events.
	pending map[string]*time.Timer

	// watched filters events down to explicitly added paths, since the
	// underlying watch is on the containing directory.
	watched map[string]bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a watcher. Call Start to begin delivering events.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fw:       fw,
		debounce: DefaultDebounce,
		pending:  make(map[string]*time.Timer),
		watched:  make(map[string]bool),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the settle window for coalescing event bursts.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// OnChange registers a handler for change events.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Add starts watching a file. The containing directory is watched so the
// file keeps being tracked across replace-by-rename updates.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.watched[abs] = true
	w.mu.Unlock()

	return w.fw.Add(filepath.Dir(abs))
}

// Start begins delivering events. It returns immediately.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop shuts down the watcher, cancels pending settle timers, and waits
// for in-flight callbacks.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fw.Close()

	w.mu.Lock()
	for _, timer := range w.pending {
		if timer.Stop() {
			w.wg.Done()
		}
	}
	w.pending = nil
	w.mu.Unlock()

	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watched[path] || w.pending == nil {
		return
	}

	op := translateOp(ev.Op)

	// Reset the settle timer; the callback fires once the burst ends. The
	// wait group covers every timer that has not been stopped in time.
	if timer, ok := w.pending[path]; ok && timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.flush(path, op)
	})
}

func (w *Watcher) flush(path string, op Operation) {
	w.mu.Lock()
	delete(w.pending, path)
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	event := Event{Path: path, Op: op, Time: time.Now()}
	for _, h := range handlers {
		h(event)
	}
}

func translateOp(op fsnotify.Op) Operation {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	default:
		return OpWrite
	}
}
