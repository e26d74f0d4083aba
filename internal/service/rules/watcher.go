package rules

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

const defaultDebounce = 300 * time.Millisecond

// ReloadFunc receives a freshly validated dispatcher.
type ReloadFunc func(*intent.Dispatcher)

// Watcher reloads a YAML rule file whenever it changes on disk. A file that
// fails to parse is logged and the previously loaded table keeps serving.
type Watcher struct {
	path     string
	onReload ReloadFunc
	logger   *zap.Logger
	debounce time.Duration

	mu    sync.Mutex
	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Reloads       int
	Failures      int
	LastEventTime time.Time
	LastError     string
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before it is reloaded.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher prepares a watcher for path. Nothing is watched until Run.
func NewWatcher(path string, onReload ReloadFunc, logger *zap.Logger, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("rules path is required")
	}
	if onReload == nil {
		return nil, errors.New("reload callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve rules path %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		path:     abs,
		onReload: onReload,
		logger:   logger.Named("rules"),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run watches the rule file's directory until ctx is cancelled. Watching the
// directory rather than the file keeps editors that save via rename working.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching rule file", zap.String("path", w.path))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("rule watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.mu.Lock()
			w.stats.LastEventTime = time.Now()
			w.mu.Unlock()
			w.logger.Debug("rule file event", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-timer.C:
			w.Reload()
		}
	}
}

// Reload parses the rule file and hands the result to the reload callback.
func (w *Watcher) Reload() error {
	d, err := intent.LoadFile(w.path)
	if err != nil {
		w.mu.Lock()
		w.stats.Failures++
		w.stats.LastError = err.Error()
		w.mu.Unlock()
		w.logger.Warn("rule reload failed, keeping previous table", zap.Error(err))
		return err
	}

	w.onReload(d)

	w.mu.Lock()
	w.stats.Reloads++
	w.stats.LastError = ""
	w.mu.Unlock()
	w.logger.Info("rules reloaded", zap.Int("rules", len(d.Rules())))
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
