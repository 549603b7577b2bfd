// Package watcher watches card and config files for changes, with
// debouncing so editor save bursts collapse into one event.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when operations are called on a closed Watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// EventType represents the type of file system event.
type EventType uint32

const (
	EventCreate EventType = 1 << iota
	EventWrite
	EventRemove
	EventRename
	EventChmod

	EventAll = EventCreate | EventWrite | EventRemove | EventRename | EventChmod
)

// Event is one debounced file system event.
type Event struct {
	Path string
	Type EventType
}

// Handler receives batches of debounced events.
type Handler func(events []Event)

// ErrorHandler receives watch errors.
type ErrorHandler func(err error)

// Watcher watches files and directories and delivers debounced event
// batches to its handler.
//
// Single files are watched through their parent directory: editors that
// save by rename-and-replace would otherwise silently detach the watch
// after the first save.
type Watcher struct {
	mu        sync.Mutex
	fs        *fsnotify.Watcher
	handler   Handler
	onError   ErrorHandler
	debouncer *Debouncer
	filter    EventType

	// dirs maps watched directories to the file names inside them we
	// care about; an empty set means the whole directory.
	dirs map[string]map[string]struct{}

	pending []Event
	closed  bool
	done    chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets how long events are held before delivery.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// WithEventFilter restricts delivery to the given event types.
func WithEventFilter(filter EventType) Option {
	return func(w *Watcher) {
		w.filter = filter
	}
}

// WithErrorHandler sets a callback for watch errors.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = handler
	}
}

// New creates a watcher delivering debounced events to handler.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watcher: handler must not be nil")
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fs:        fs,
		handler:   handler,
		debouncer: NewDebouncer(500 * time.Millisecond),
		filter:    EventAll &^ EventChmod,
		dirs:      make(map[string]map[string]struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Add watches a file or directory.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	names, watched := w.dirs[dir]
	if !watched {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		names = make(map[string]struct{})
		w.dirs[dir] = names
	}

	if info.IsDir() {
		// Whole directory wins over any per-file restriction.
		w.dirs[dir] = make(map[string]struct{})
	} else if len(names) > 0 || !watched {
		names[filepath.Base(abs)] = struct{}{}
	}
	return nil
}

// Remove stops watching a file or directory.
func (w *Watcher) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	if _, ok := w.dirs[abs]; ok {
		delete(w.dirs, abs)
		return w.fs.Remove(abs)
	}

	dir := filepath.Dir(abs)
	if names, ok := w.dirs[dir]; ok {
		delete(names, filepath.Base(abs))
		if len(names) == 0 {
			delete(w.dirs, dir)
			return w.fs.Remove(dir)
		}
	}
	return nil
}

// WatchedPaths returns the currently watched directories.
func (w *Watcher) WatchedPaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		paths = append(paths, dir)
	}
	return paths
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	w.debouncer.Cancel()
	return w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	t := eventTypeFromFsnotify(ev.Op)
	if t&w.filter == 0 {
		return
	}

	w.mu.Lock()
	if w.closed || !w.wants(ev.Name) {
		w.mu.Unlock()
		return
	}
	w.pending = append(w.pending, Event{Path: ev.Name, Type: t})
	w.mu.Unlock()

	w.debouncer.Trigger(w.flush)
}

// wants reports whether the path is one we were asked to watch.
// Callers hold w.mu.
func (w *Watcher) wants(path string) bool {
	names, ok := w.dirs[filepath.Dir(path)]
	if !ok {
		return false
	}
	if len(names) == 0 {
		return true
	}
	_, ok = names[filepath.Base(path)]
	return ok
}

func (w *Watcher) flush() {
	w.mu.Lock()
	events := w.pending
	w.pending = nil
	closed := w.closed
	w.mu.Unlock()

	if closed || len(events) == 0 {
		return
	}
	w.handler(events)
}

func eventTypeFromFsnotify(op fsnotify.Op) EventType {
	var t EventType
	if op&fsnotify.Create != 0 {
		t |= EventCreate
	}
	if op&fsnotify.Write != 0 {
		t |= EventWrite
	}
	if op&fsnotify.Remove != 0 {
		t |= EventRemove
	}
	if op&fsnotify.Rename != 0 {
		t |= EventRename
	}
	if op&fsnotify.Chmod != 0 {
		t |= EventChmod
	}
	return t
}
