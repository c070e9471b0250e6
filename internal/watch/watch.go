// Package watch re-runs an action when a file changes on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay is how long a burst of events must settle before onChange runs.
const DefaultDelay = 500 * time.Millisecond

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDelay overrides the debounce delay.
func WithDelay(delay time.Duration) Option {
	return func(w *FileWatcher) {
		if delay > 0 {
			w.delay = delay
		}
	}
}

// WithLogger sets the logger for watcher errors.
func WithLogger(logger *zap.Logger) Option {
	return func(w *FileWatcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// FileWatcher calls onChange after a file is written, created or renamed into
// place. The parent directory is watched so editors that replace the file
// atomically are still seen.
type FileWatcher struct {
	path     string
	delay    time.Duration
	onChange func() error
	logger   *zap.Logger

	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce *time.Timer
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a watcher for path. Call Start to begin watching.
func New(path string, onChange func() error, opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{
		path:     abs,
		delay:    DefaultDelay,
		onChange: onChange,
		logger:   zap.NewNop(),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching in a background goroutine.
func (w *FileWatcher) Start(ctx context.Context) error {
	if w.watcher != nil {
		return nil
	}
	dir := filepath.Dir(w.path)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Run starts the watcher and blocks until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

// Stop ends the watch loop and cancels any pending callback.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
			w.debounce = nil
		}
		w.mu.Unlock()
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
	})
	w.wg.Wait()
}

func (w *FileWatcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.String("path", w.path), zap.Error(err))
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
		w.schedule()
	}
}

func (w *FileWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		select {
		case <-w.stopCh:
			return
		default:
		}
		if err := w.onChange(); err != nil {
			w.logger.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
			return
		}
		w.logger.Debug("reloaded", zap.String("path", w.path))
	})
}
