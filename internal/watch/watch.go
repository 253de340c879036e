// Package watch reports settled changes to a single file.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a file must be quiet before a change is reported.
const DebounceDelay = 100 * time.Millisecond

// EventType describes a settled change.
type EventType int

const (
	EventChanged EventType = iota
	EventRemoved
)

// Event is emitted once per burst of filesystem activity on the watched file.
type Event struct {
	Type EventType
	Path string
}

// File watches path until ctx is done. The parent directory is watched so that
// editors which save by rename are still seen. The returned channel is closed
// when watching stops.
func File(ctx context.Context, path string) (<-chan Event, error) {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan Event, 8)

	go func() {
		defer watcher.Close()
		defer close(events)

		var debounce *time.Timer
		var fire <-chan time.Time
		var lastOp fsnotify.Op

		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || event.Op == fsnotify.Chmod {
					continue
				}
				lastOp = event.Op
				if debounce == nil {
					debounce = time.NewTimer(DebounceDelay)
				} else {
					debounce.Reset(DebounceDelay)
				}
				fire = debounce.C

			case <-fire:
				fire = nil
				ev := Event{Type: EventChanged, Path: path}
				if lastOp&(fsnotify.Remove|fsnotify.Rename) != 0 {
					ev.Type = EventRemoved
				}
				select {
				case events <- ev:
				default:
					// Channel full, drop event
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("watch error", "path", path, "err", err)
			}
		}
	}()

	return events, nil
}
