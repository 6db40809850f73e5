package content

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chiclang/chicweb/pkg/logger"
)

// Watcher purges a Cache whenever anything changes under a local content
// directory. Bursts of events (editor saves, git checkouts) collapse into a
// single purge once the directory has been quiet for the debounce window.
type Watcher struct {
	root     string
	cache    Cache
	logger   *slog.Logger
	debounce time.Duration
	onPurge  func()

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// WatcherOption configures Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a purge (default 200ms).
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the watcher logger.
func WithWatcherLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPurgeHook registers fn to run after every purge.
func WithPurgeHook(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onPurge = fn
	}
}

// NewWatcher creates a watcher for root. Nothing is watched until Start.
func NewWatcher(root string, cache Cache, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		root:     root,
		cache:    cache,
		logger:   slog.New(slog.DiscardHandler),
		debounce: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start registers root and all of its subdirectories and begins processing
// events in a goroutine. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrFailedToWatch, err)
	}
	if err := addRecursive(fw, w.root); err != nil {
		_ = fw.Close()
		return errors.Join(ErrFailedToWatch, err)
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.run(ctx, fw, w.stopCh, w.doneCh)

	w.logger.InfoContext(ctx, "watching content directory", slog.String("root", w.root))
	return nil
}

// Stop ends event processing and releases the underlying fsnotify watcher.
// It blocks until the event loop has exited.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	fw, stopCh, doneCh := w.watcher, w.stopCh, w.doneCh
	w.watcher = nil
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
	return fw.Close()
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-stopCh:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			// New directories must be watched explicitly.
			if event.Has(fsnotify.Create) {
				if err := addRecursive(fw, event.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
					w.logger.WarnContext(ctx, "content watcher cannot follow new directory",
						slog.String("path", event.Name),
						logger.Error(err),
					)
				}
			}
			w.logger.DebugContext(ctx, "content changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.ErrorContext(ctx, "content watcher error", logger.Error(err))

		case <-timer.C:
			w.purge(ctx)
		}
	}
}

func (w *Watcher) purge(ctx context.Context) {
	if err := w.cache.Purge(ctx); err != nil {
		w.logger.ErrorContext(ctx, "content cache purge failed", logger.Error(err))
		return
	}
	w.logger.InfoContext(ctx, "content cache purged")
	if w.onPurge != nil {
		w.onPurge()
	}
}

// addRecursive watches dir and every directory below it. A path that is not
// a directory is ignored.
func addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(p)
	})
}
