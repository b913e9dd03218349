// Package providers contains dependency injection providers for the
// MuscleMap client state layer.
package providers

import (
	"encoding/hex"

	"github.com/samber/do/v2"

	"github.com/musclemap/musclemap-client/internal/auth"
	"github.com/musclemap/musclemap-client/internal/config"
	"github.com/musclemap/musclemap-client/internal/logger"
)

// ProvideConfig provides the application configuration. The parsed
// command-line flags are registered as a value by the container.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	flags := do.MustInvoke[config.Flags](i)
	return config.Load(flags)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting MuscleMap client state layer",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.Path,
	)

	return log, nil
}

// MarkerKey wraps the session marker key bytes.
type MarkerKey []byte

// ProvideMarkerKey loads or generates the marker signing key.
func ProvideMarkerKey(i do.Injector) (MarkerKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Data.Path)
	if err != nil {
		return nil, err
	}

	log.Info("Session marker key loaded", "marker_ttl", cfg.Session.MarkerTTL)
	return MarkerKey(key), nil
}

// ProvideMarkerService provides the PASETO marker service.
func ProvideMarkerService(i do.Injector) (*auth.MarkerService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvoke[MarkerKey](i)

	return auth.NewMarkerService(hex.EncodeToString(key), cfg.Session.MarkerTTL)
}
