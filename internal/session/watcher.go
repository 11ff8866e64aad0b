package session

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/homescreen/internal/model"
)

// Watcher reloads a session deck whenever it is written or replaced
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	onLoad  func([]model.Card)
	onError func(error)

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// mu serializes reloads with Close; no reload starts once closed is set
	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher for the deck at path. The deck's directory
// must exist; the deck itself may appear later.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory so editors that replace the file are still seen
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &Watcher{
		path:      absPath,
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(debounce),
		done:      make(chan struct{}),
	}, nil
}

// SetCallbacks sets the functions called with each reloaded deck and with
// load or watch errors. Both run on the watcher's goroutine.
func (w *Watcher) SetCallbacks(onLoad func([]model.Card), onError func(error)) {
	w.onLoad = onLoad
	w.onError = onError
}

// Path returns the absolute deck path
func (w *Watcher) Path() string {
	return w.path
}

// Start begins delivering reloads
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watch()
}

// Close stops watching and drops any pending reload
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.Cancel()
		err = w.fsWatcher.Close()
		w.wg.Wait()

		// waits for a reload already running on the debouncer's goroutine
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) watch() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.debouncer.Trigger(w.reload)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.notifyError(err)
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	cards, err := Load(w.path)
	if err != nil {
		w.notifyError(err)
		return
	}

	log.Printf("Session %s reloaded: %d cards", w.path, len(cards))
	if w.onLoad != nil {
		w.onLoad(cards)
	}
}

func (w *Watcher) notifyError(err error) {
	log.Printf("Session watcher error: %v", err)
	if w.onError != nil {
		w.onError(err)
	}
}
