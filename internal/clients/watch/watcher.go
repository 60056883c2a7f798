package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher is the capability the engine needs from a filesystem watch:
// approximate change notifications for one directory. The engine's poll
// timer remains the fallback, so a Watcher may be absent entirely.
type Watcher interface {
	// Events yields one value per batch of observed changes. Values carry
	// no detail; the engine rescans the whole directory regardless.
	Events() <-chan struct{}
	Close() error
}

// FSWatcher implements Watcher on top of fsnotify.
type FSWatcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
}

// NewFSWatcher starts watching dir.
func NewFSWatcher(dir string) (*FSWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &FSWatcher{
		watcher: fw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *FSWatcher) run() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Coalesce: a pending notification already covers this change.
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; polling covers the gap.
		case <-w.done:
			return
		}
	}
}

// Events returns the change notification channel.
func (w *FSWatcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher. Safe to call once.
func (w *FSWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// MockWatcher implements Watcher for testing, fed manually via Notify.
type MockWatcher struct {
	events chan struct{}
}

// NewMockWatcher creates a MockWatcher.
func NewMockWatcher() *MockWatcher {
	return &MockWatcher{events: make(chan struct{}, 8)}
}

func (m *MockWatcher) Notify() {
	select {
	case m.events <- struct{}{}:
	default:
	}
}

func (m *MockWatcher) Events() <-chan struct{} { return m.events }

func (m *MockWatcher) Close() error { return nil }
