package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/musclemap/musclemap-client/internal/config"
	"github.com/musclemap/musclemap-client/internal/integration"
	"github.com/musclemap/musclemap-client/internal/logger"
	"github.com/musclemap/musclemap-client/internal/watcher"
)

// WatcherHandle wraps the integrations file watcher with its context
// for lifecycle management. The watcher is nil when no integrations
// file is configured.
type WatcherHandle struct {
	watcher *watcher.Watcher
	cancel  context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *WatcherHandle) Shutdown() error {
	if h.watcher == nil {
		return nil
	}
	h.cancel()
	return nil
}

// ProvideWatcher provides the integrations file watcher, started in the
// background when an integrations file is configured.
func ProvideWatcher(i do.Injector) (*WatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	integrations := do.MustInvoke[*integration.Store](i)

	if cfg.Integrations.FilePath == "" {
		log.Debug("No integrations file configured; watcher disabled")
		return &WatcherHandle{}, nil
	}

	w, err := watcher.New(cfg.Integrations.FilePath, 0, integrations, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("Integrations watcher stopped", "error", err)
		}
	}()

	log.Info("Watching integrations file", "path", cfg.Integrations.FilePath)

	return &WatcherHandle{watcher: w, cancel: cancel}, nil
}
