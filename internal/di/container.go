// Package di provides dependency injection configuration for the
// MuscleMap client state layer.
package di

import (
	"github.com/samber/do/v2"

	"github.com/musclemap/musclemap-client/internal/auth"
	"github.com/musclemap/musclemap-client/internal/config"
	"github.com/musclemap/musclemap-client/internal/content"
	"github.com/musclemap/musclemap-client/internal/di/providers"
	"github.com/musclemap/musclemap-client/internal/integration"
	"github.com/musclemap/musclemap-client/internal/logger"
	"github.com/musclemap/musclemap-client/internal/session"
	"github.com/musclemap/musclemap-client/internal/ui"
	"github.com/musclemap/musclemap-client/internal/video"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, flags)
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMarkerKey)
	do.Provide(injector, providers.ProvideMarkerService)

	// Storage layer
	do.Provide(injector, providers.ProvidePersist)

	// State stores
	do.Provide(injector, providers.ProvideSessionStore)
	do.Provide(injector, providers.ProvideVideoStore)
	do.Provide(injector, providers.ProvideModeration)
	do.Provide(injector, providers.ProvideIntegrationStore)
	do.Provide(injector, providers.ProvideContentStore)
	do.Provide(injector, providers.ProvideUIStore)

	// Workers
	do.Provide(injector, providers.ProvideWatcher)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of every store.
func Bootstrap(injector *do.RootScope) error {
	// Core infrastructure
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[providers.MarkerKey](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*auth.MarkerService](injector); err != nil {
		return err
	}

	// Storage
	if _, err := do.Invoke[*providers.PersistHandle](injector); err != nil {
		return err
	}

	// Stores
	if _, err := do.Invoke[*session.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*video.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*video.Moderation](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*integration.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*content.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*ui.Store](injector); err != nil {
		return err
	}

	// Workers
	if _, err := do.Invoke[*providers.WatcherHandle](injector); err != nil {
		return err
	}

	return nil
}
