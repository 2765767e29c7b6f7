// Package watch re-runs an action when a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/xreq/pkg/log"
)

// DefaultDebounce is how long a burst of events must stay quiet before the
// action runs.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithInitialRun runs the action once as soon as the watch is in place, so a
// change made while that first run is in flight is not missed.
func WithInitialRun() Option {
	return func(w *FileWatcher) {
		w.initial = true
	}
}

// FileWatcher calls onChange after a file is written or replaced. Calls never
// overlap: a change during a slow run waits for that run to finish.
type FileWatcher struct {
	path     string
	delay    time.Duration
	onChange func(ctx context.Context)
	logger   log.Logger
	initial  bool

	mu       sync.Mutex
	debounce *time.Timer
	stopped  bool

	runMu    sync.Mutex
	inFlight sync.WaitGroup
}

// New creates a watcher for path. A delay of zero uses DefaultDebounce.
func New(path string, delay time.Duration, onChange func(ctx context.Context), logger log.Logger, opts ...Option) *FileWatcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	w := &FileWatcher{
		path:     filepath.Clean(path),
		delay:    delay,
		onChange: onChange,
		logger:   logger.With(log.String("path", path)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done. The parent directory is watched so that
// editors which save by rename are still noticed. When Run returns no call to
// onChange is running or pending.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	defer w.stop()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Debug("watching file")

	if w.initial {
		w.inFlight.Add(1)
		go func() {
			defer w.inFlight.Done()
			w.fire(ctx)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.trigger(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *FileWatcher) trigger(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.debounce != nil && w.debounce.Stop() {
		w.inFlight.Done()
	}

	w.inFlight.Add(1)
	w.debounce = time.AfterFunc(w.delay, func() {
		defer w.inFlight.Done()
		w.logger.Info("file changed")
		w.fire(ctx)
	})
}

// fire runs onChange, one call at a time.
func (w *FileWatcher) fire(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	w.onChange(ctx)
}

// stop drops any pending call and waits for a running one to return.
func (w *FileWatcher) stop() {
	w.mu.Lock()
	w.stopped = true
	if w.debounce != nil && w.debounce.Stop() {
		w.inFlight.Done()
	}
	w.mu.Unlock()

	w.inFlight.Wait()
}
