package watch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher errors.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// defaultDebounce coalesces bursts of file events into one
// notification.
const defaultDebounce = 200 * time.Millisecond

// PresetWatcher watches a preset directory and fires a callback when
// its *.json files change. Editors and package managers produce event
// bursts; the watcher debounces them.
type PresetWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	onChange func()
	debounce time.Duration

	mu     sync.Mutex
	closed bool

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a PresetWatcher.
type Option func(*PresetWatcher)

// WithDebounce overrides the notification debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *PresetWatcher) {
		w.debounce = d
	}
}

// NewPresetWatcher watches dir and invokes onChange (from the
// watcher's own goroutine) after its preset files change.
func NewPresetWatcher(dir string, onChange func(), opts ...Option) (*PresetWatcher, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absDir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(absDir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &PresetWatcher{
		watcher:  fsw,
		dir:      absDir,
		onChange: onChange,
		debounce: defaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Dir returns the watched directory.
func (w *PresetWatcher) Dir() string {
	return w.dir
}

// loop debounces relevant events into onChange calls.
func (w *PresetWatcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next poll of
			// the preset list reads the directory directly.
		case <-fire:
			fire = nil
			if w.onChange != nil {
				w.onChange()
			}
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant filters for preset file mutations.
func relevant(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), ".json") {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// Close stops watching. Safe to call more than once.
func (w *PresetWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.closeCh)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
