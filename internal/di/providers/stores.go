package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/musclemap/musclemap-client/internal/auth"
	"github.com/musclemap/musclemap-client/internal/config"
	"github.com/musclemap/musclemap-client/internal/content"
	"github.com/musclemap/musclemap-client/internal/integration"
	"github.com/musclemap/musclemap-client/internal/logger"
	"github.com/musclemap/musclemap-client/internal/persist"
	"github.com/musclemap/musclemap-client/internal/ratelimit"
	"github.com/musclemap/musclemap-client/internal/session"
	"github.com/musclemap/musclemap-client/internal/ui"
	"github.com/musclemap/musclemap-client/internal/video"
)

// PersistHandle wraps the partition store with shutdown capability.
type PersistHandle struct {
	*persist.Store
}

// Shutdown implements do.Shutdownable.
func (h *PersistHandle) Shutdown() error {
	return h.Close()
}

// ProvidePersist provides the partition database.
func ProvidePersist(i do.Injector) (*PersistHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.Path, "db")
	store, err := persist.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	return &PersistHandle{Store: store}, nil
}

// ProvideSessionStore provides the identity and subscription store.
func ProvideSessionStore(i do.Injector) (*session.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	persistHandle := do.MustInvoke[*PersistHandle](i)
	markers := do.MustInvoke[*auth.MarkerService](i)

	limiter := ratelimit.New(cfg.Session.LoginRPS, cfg.Session.LoginBurst)
	admin := session.AdminCredentials{
		Email:  cfg.Session.AdminEmail,
		Secret: cfg.Session.AdminSecret,
	}

	return session.New(persistHandle.Store, markers, limiter, admin, log.Logger), nil
}

// ProvideVideoStore provides the rating and comment store.
func ProvideVideoStore(i do.Injector) (*video.Store, error) {
	log := do.MustInvoke[*logger.Logger](i)
	persistHandle := do.MustInvoke[*PersistHandle](i)
	sessions := do.MustInvoke[*session.Store](i)

	return video.New(context.Background(), persistHandle.Store, sessions, log.Logger)
}

// ProvideModeration provides the comment review operations.
func ProvideModeration(i do.Injector) (*video.Moderation, error) {
	store := do.MustInvoke[*video.Store](i)
	return video.NewModeration(store), nil
}

// ProvideIntegrationStore provides the integration credential catalog.
func ProvideIntegrationStore(i do.Injector) (*integration.Store, error) {
	log := do.MustInvoke[*logger.Logger](i)
	persistHandle := do.MustInvoke[*PersistHandle](i)

	return integration.New(context.Background(), persistHandle.Store, log.Logger)
}

// ProvideContentStore provides the anatomy catalog store.
func ProvideContentStore(i do.Injector) (*content.Store, error) {
	log := do.MustInvoke[*logger.Logger](i)
	persistHandle := do.MustInvoke[*PersistHandle](i)

	return content.New(context.Background(), persistHandle.Store, log.Logger)
}

// ProvideUIStore provides the UI preferences store.
func ProvideUIStore(i do.Injector) (*ui.Store, error) {
	log := do.MustInvoke[*logger.Logger](i)
	persistHandle := do.MustInvoke[*PersistHandle](i)

	return ui.New(context.Background(), persistHandle.Store, log.Logger)
}
