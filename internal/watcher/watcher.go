// Package watcher keeps the integration catalog in sync with an
// externally managed JSON file. Writes to the file are debounced and
// re-imported; a payload that fails to parse leaves the catalog
// untouched.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Importer receives the file contents after a settled write.
type Importer interface {
	ImportConfigs(ctx context.Context, payload string) bool
}

// Watcher monitors a single configuration file. The parent directory is
// watched so editors that replace the file (write to temp, rename over)
// are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	importer Importer
	logger   *slog.Logger

	fs *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup
}

// New creates a watcher for the given file. A zero debounce uses the
// default. The file itself does not have to exist yet; its directory
// does.
func New(path string, debounce time.Duration, importer Importer, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		debounce: debounce,
		importer: importer,
		logger:   logger,
		fs:       fs,
	}, nil
}

// Start imports the file once if it already exists, then blocks
// processing events until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if _, err := os.Stat(w.path); err == nil {
		w.reload(ctx)
	}

	w.wg.Add(1)
	go w.processEvents(ctx)

	<-ctx.Done()
	return w.Stop()
}

// Stop closes the underlying watcher and waits for the event loop.
func (w *Watcher) Stop() error {
	err := w.fs.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return err
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload(ctx)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error("Watcher error", "error", err)
			}
		}
	}
}

// scheduleReload resets the debounce timer so a burst of writes yields
// a single import once the file settles.
func (w *Watcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.reload(ctx)
	})
}

func (w *Watcher) reload(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if w.logger != nil {
			w.logger.Warn("Failed to read integrations file", "path", w.path, "error", err)
		}
		return
	}

	if !w.importer.ImportConfigs(ctx, string(data)) {
		if w.logger != nil {
			w.logger.Warn("Integrations file did not parse; catalog unchanged", "path", w.path)
		}
		return
	}

	if w.logger != nil {
		w.logger.Info("Integration catalog reloaded", "path", w.path)
	}
}
