// Package watcher delivers debounced file-creation events from a watched
// directory.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the minimum interval between accepted events for the
// same path. Editors and download managers often fire several notifications
// for one new file.
const DefaultDebounce = time.Second

// Event is a single accepted file-creation notification.
type Event struct {
	Path string
}

// Watcher wraps fsnotify with create-only filtering and per-path debouncing.
// lastSeen is guarded because fsnotify delivers from its own goroutine.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	now      func() time.Time
	lastSeen map[string]time.Time
	mu       sync.Mutex
	debounce time.Duration
}

// New creates a Watcher. A debounce of zero or less selects the default.
func New(debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		fs:       fs,
		logger:   logger,
		now:      time.Now,
		lastSeen: make(map[string]time.Time),
		debounce: debounce,
	}, nil
}

// Watch starts monitoring dir (non-recursive) and returns a channel of
// accepted events. The channel is closed when ctx is cancelled or the
// underlying watcher shuts down. Events are delivered in receipt order.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	if err := w.fs.Add(dir); err != nil {
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	events := make(chan Event, 64)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) {
					continue
				}
				if info, err := os.Stat(ev.Name); err != nil || info.IsDir() {
					continue
				}
				if !w.accept(ev.Name) {
					w.logger.Debug("debounced duplicate event", "path", ev.Name)
					continue
				}
				select {
				case events <- Event{Path: ev.Name}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				w.logger.Error("watcher error", "error", err)
			}
		}
	}()

	return events, nil
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// accept records the event time for path and reports whether enough time has
// passed since the last accepted event for it.
func (w *Watcher) accept(path string) bool {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	if last, seen := w.lastSeen[path]; seen && now.Sub(last) < w.debounce {
		return false
	}
	w.lastSeen[path] = now
	return true
}
