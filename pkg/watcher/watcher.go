// Package watcher re-runs work when a mesh file changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce absorbs the write bursts CAD exporters produce while
// saving a file.
const DefaultDebounce = 300 * time.Millisecond

// ModelWatcher watches mesh files and invokes a callback once a save
// has settled.
type ModelWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
}

// New creates a watcher. A non-positive debounce falls back to
// DefaultDebounce.
func New(debounce time.Duration) (*ModelWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &ModelWatcher{
		watcher:   fsw,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers a callback for changes to the given file.
func (w *ModelWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := w.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.callbacks[absPath] = callback
	w.mu.Unlock()
	return nil
}

// Start consumes change events until the watcher is closed. Watcher
// errors are reported through onError, which may be nil.
func (w *ModelWatcher) Start(onError func(error)) {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					w.fileChanged(event.Name)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()
}

// fileChanged schedules the callback, resetting the debounce timer on
// every event for the same path.
func (w *ModelWatcher) fileChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		callback(path)
	})
}

// Close stops event delivery.
func (w *ModelWatcher) Close() error {
	return w.watcher.Close()
}
