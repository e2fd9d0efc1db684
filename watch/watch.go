// Package watch reports changes to a single file. The file's directory is watched so that editors
// that save by rename-and-replace keep triggering events.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses the burst of events a single save produces
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher calls onChange once per burst of writes to path
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   logrus.FieldLogger
	done     chan struct{}
}

// NewFileWatcher returns a watcher for path; call Start to begin watching
func NewFileWatcher(path string, debounce time.Duration, onChange func(), logger logrus.FieldLogger) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &FileWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start watches until ctx is cancelled
func (w *FileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.WithField("path", w.path).Debug("watching path")

	go w.readWatcher(ctx, watcher)
	return nil
}

// Done is closed after the watcher has shut down
func (w *FileWatcher) Done() <-chan struct{} {
	return w.done
}

func (w *FileWatcher) readWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	defer close(w.done)
	defer watcher.Close()

	mask := fsnotify.Create | fsnotify.Write | fsnotify.Rename
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path || evt.Op&mask == 0 {
				continue
			}
			w.logger.WithField("event", evt.String()).Debug("Registered file event.")
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("File watcher error.")
		case <-timer.C:
			w.onChange()
		}
	}
}
