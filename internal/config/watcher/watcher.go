// Package watcher reloads configuration when the file changes on disk.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Handler is called after the watched file changes and the debounce
// window elapses.
type Handler func(path string)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window for rapid successive writes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors a single configuration file. The parent directory is
// watched rather than the file itself, so editors that replace the file
// by rename still trigger a reload.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	path    string
	handler Handler

	debounce time.Duration
	timer    *time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path and invokes handler on changes.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and releases resources. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.schedule()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event retriggers.
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// schedule arms the debounce timer, restarting it on repeat events.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.handler(w.path)
		}
	})
}
