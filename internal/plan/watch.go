package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives the freshly loaded plan, or the error that prevented
// loading it.
type ReloadFunc func(p *Plan, err error)

// Watch reloads path whenever it is written or created and hands the result
// to onReload. The parent directory is watched so that editors which replace
// the file on save are followed. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onReload ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve plan path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch plan directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isPlanChange(event, abs) {
				continue
			}
			p, err := LoadFile(abs)
			onReload(p, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			onReload(nil, fmt.Errorf("watcher error: %w", err))
		}
	}
}

func isPlanChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
