package retropda

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 150 * time.Millisecond

// ManifestWatcher calls a function whenever the manifest file changes on
// disk, so edits made by pdactl or by hand show up in an open window.
type ManifestWatcher struct {
	path     string
	logger   *Logger
	debounce time.Duration
	onChange func()
}

// NewManifestWatcher watches the manifest behind store.
func NewManifestWatcher(store *ManifestStore, logger *Logger, onChange func()) *ManifestWatcher {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &ManifestWatcher{
		path:     store.Path(),
		logger:   logger.Named("watch"),
		debounce: defaultWatchDebounce,
		onChange: onChange,
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file so creation and replacement are both seen.
func (w *ManifestWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}
	w.logger.Debug("watching %s", w.path)

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("manifest watcher error: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timerChan(timer):
			timer = nil
			w.logger.Debug("manifest changed on disk")
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

func (w *ManifestWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
