package phrasebook

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors emit for a single save.
const reloadDelay = 50 * time.Millisecond

// EventType classifies watch events.
type EventType string

const (
	EventReload EventType = "reload"
	EventError  EventType = "error"
)

// Event reports the outcome of a reload triggered by a file change.
type Event struct {
	Type      EventType
	Path      string
	Styles    []string
	Err       error
	Timestamp int64
}

// String implements lifecycle.Event.
func (e Event) String() string {
	if e.Type == EventError {
		return fmt.Sprintf("%s %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s (%d styles)", e.Type, e.Path, len(e.Styles))
}

// Watch reloads the book whenever a matching file changes and reports each
// reload on the returned channel. A failed reload keeps the previous
// greetings and is reported as an EventError. The channel is closed once ctx
// is done.
func (b *Book) Watch(ctx context.Context) (<-chan Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := b.addDirs(watcher); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan Event, b.config.eventBuffer)
	b.setWatching(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer b.setWatching(false)
		defer watcher.Close()
		return b.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		b.reportError(fmt.Errorf("phrasebook watcher: %w", err))
	}))

	return events, nil
}

func (b *Book) addDirs(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(b.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (b *Book) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- Event) error {
	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !b.relevant(watcher, event) {
				continue
			}
			b.config.logger.Debug("phrasebook changed", "path", event.Name, "op", event.Op.String())
			pending = event.Name
			timer.Reset(reloadDelay)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			b.reportError(wErr)

		case <-timer.C:
			if !b.send(ctx, events, b.reloadEvent(pending)) {
				return nil
			}
		}
	}
}

// relevant reports whether event can change the book. New directories are
// added to the watcher so deep patterns keep working.
func (b *Book) relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}

	rel, err := filepath.Rel(b.Root, event.Name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)

	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				b.reportError(fmt.Errorf("failed to watch %s: %w", event.Name, err))
			}
			// Files may land in the directory before it is watched.
			return true
		}
	}

	matched, err := doublestar.Match(b.config.pattern, rel)
	if err != nil {
		return false
	}
	if matched {
		return true
	}
	// A removed or renamed directory may have held matching files.
	return event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (b *Book) reloadEvent(path string) Event {
	e := Event{
		Type:      EventReload,
		Path:      path,
		Timestamp: time.Now().Unix(),
	}
	if err := b.Reload(); err != nil {
		b.reportError(err)
		e.Type = EventError
		e.Err = err
		return e
	}
	e.Styles = b.Styles()
	return e
}

func (b *Book) send(ctx context.Context, events chan<- Event, e Event) bool {
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func (b *Book) reportError(err error) {
	b.config.logger.Error("phrasebook watch error", "root", b.Root, "error", err)
	if b.config.errorHandler != nil {
		b.config.errorHandler(err)
	}
}
