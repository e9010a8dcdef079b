package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the registry whenever its catalog file changes. Bursts of
// file events are debounced. Watch blocks until ctx is done and then returns
// nil; reload failures are logged and leave the live index in place.
func (r *Registry) Watch(ctx context.Context) error {
	fs, ok := r.src.(*FileSource)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWatchable, r.src)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files by rename, so watch the directory rather than
	// the file itself.
	dir := filepath.Dir(fs.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	r.logger.Info("watching catalog", zap.String("path", fs.Path()))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("catalog watcher error", zap.Error(err))
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReloadForPath(event.Name, fs.Path()) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.opts.Debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.opts.Debounce)
		case <-timerChan(timer):
			timer = nil
			if err := r.reload(ctx, ChangeWatch); err != nil {
				r.logger.Warn("catalog reload failed, keeping previous index", zap.Error(err))
			}
		}
	}
}

func shouldReloadForPath(path, catalogPath string) bool {
	if path == "" || catalogPath == "" {
		return false
	}
	return filepath.Clean(path) == filepath.Clean(catalogPath)
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
