package prefs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to one preference key made by other processes.
type Watcher struct {
	store  Store
	path   string
	key    string
	logger *zap.Logger

	started func() // test hook, called once the watch is registered
}

// NewWatcher watches the file at path, which must back store.
func NewWatcher(store Store, path, key string, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{store: store, path: path, key: key, logger: logger}
}

// Run blocks until ctx is done, calling onChange with the new value whenever
// the key's value differs from the last one seen. The parent directory is
// watched because atomic writes replace the file.
func (w *Watcher) Run(ctx context.Context, onChange func(value string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("prefs: watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("prefs: watch %s: %w", dir, err)
	}

	last, _, err := w.store.Get(ctx, w.key)
	if err != nil {
		w.logger.Warn("initial preference read failed", zap.Error(err))
	}
	if w.started != nil {
		w.started()
	}

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			value, found, err := w.store.Get(ctx, w.key)
			if err != nil {
				w.logger.Warn("preference reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			if !found || value == last {
				continue
			}
			last = value
			w.logger.Info("preference changed externally", zap.String("key", w.key), zap.String("value", value))
			onChange(value)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("preference watcher error", zap.Error(err))
		}
	}
}
