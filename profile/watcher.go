package profile

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher hot-reloads a YAML definitions file and exposes the current
// registry. A failed reload keeps the previous registry in place and logs a
// warning; the engine never runs without a valid definition set.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	current atomic.Pointer[Registry]
	dirty   atomic.Bool
}

// NewWatcher loads the definitions file once and prepares a watcher on its
// directory. The initial load must succeed; hot reloads after that are best
// effort.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	defs, err := LoadDefinitionsFile(path)
	if err != nil {
		return nil, err
	}
	registry, err := NewRegistry(defs...)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
	}
	w.current.Store(registry)
	return w, nil
}

// Registry returns the currently loaded registry. The returned value is
// immutable; concurrent readers may hold it across a reload.
func (w *Watcher) Registry() *Registry {
	return w.current.Load()
}

// Start begins watching the definitions file for changes. Watching the
// parent directory instead of the file survives editors that replace the
// file on save.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Profile definitions watcher started",
		"path", w.path,
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.dirty.Store(true)
				w.logger.Debug("Definitions change detected", "op", event.Op.String())
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			if w.dirty.Swap(false) {
				w.reload()
			}
		}
	}
}

// reload re-reads the definitions file and swaps the registry. On failure
// the previous registry stays active.
func (w *Watcher) reload() {
	defs, err := LoadDefinitionsFile(w.path)
	if err != nil {
		w.logger.Warn("Failed to reload definitions, keeping previous registry",
			"path", w.path,
			"error", err)
		return
	}
	registry, err := NewRegistry(defs...)
	if err != nil {
		w.logger.Warn("Reloaded definitions rejected, keeping previous registry",
			"path", w.path,
			"error", err)
		return
	}

	w.current.Store(registry)
	w.logger.Info("Profile definitions reloaded",
		"path", w.path,
		"profiles", registry.Len())
}
