// Package integration owns the environment-store partition: the
// credential catalog for the third-party services the application can
// talk to (payments, mail, 3D models, translation, analytics, error
// reporting).
package integration

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"log/slog"
	"sync"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
)

const (
	partitionName = "environment-store"

	schemaVersion = 1
)

// envPartition is the persisted shape of environment-store.
type envPartition struct {
	SchemaVersion int                                 `json:"schema_version"`
	Configs       map[string]domain.IntegrationConfig `json:"configs"`
}

// Partial carries the fields of an UpdateConfig call. Nil pointers mean
// "leave unchanged"; a non-nil AdditionalConfig replaces the map as a
// whole (shallow merge).
type Partial struct {
	APIKey           *string
	Endpoint         *string
	Enabled          *bool
	AdditionalConfig map[string]any
}

// Store holds the integration catalog and is the only writer of the
// environment-store partition.
type Store struct {
	persist *persist.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	configs map[string]domain.IntegrationConfig
}

// New creates the store and loads any persisted catalog. Absent or
// corrupt state starts with every integration at its inert default.
func New(ctx context.Context, p *persist.Store, logger *slog.Logger) (*Store, error) {
	s := &Store{
		persist: p,
		logger:  logger,
		configs: make(map[string]domain.IntegrationConfig),
	}

	var part envPartition
	found, err := p.Load(ctx, partitionName, &part)
	if err != nil {
		return nil, err
	}
	if found && part.Configs != nil {
		for name, cfg := range part.Configs {
			if Known(name) {
				s.configs[name] = cfg
			}
		}
	}

	return s, nil
}

// save persists the catalog. Callers hold the write lock.
func (s *Store) save(ctx context.Context) {
	part := envPartition{SchemaVersion: schemaVersion, Configs: s.configs}
	if err := s.persist.Save(ctx, partitionName, part); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist integration catalog", "error", err)
	}
}

// GetConfig returns the configuration for the named integration. An
// unknown or never-configured name yields the inert default rather than
// an error.
func (s *Store) GetConfig(name string) domain.IntegrationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[name]
	if !ok {
		return domain.DefaultIntegrationConfig()
	}
	return cfg.Clone()
}

// IsConfigured reports whether the integration is enabled and carries
// every field its catalog entry requires. Unknown names are never
// configured.
func (s *Store) IsConfigured(name string) bool {
	req, ok := Catalog[name]
	if !ok {
		return false
	}

	cfg := s.GetConfig(name)
	if !cfg.Enabled {
		return false
	}
	if req.NeedsAPIKey && cfg.APIKey == "" {
		return false
	}
	if req.NeedsEndpoint && cfg.Endpoint == "" {
		return false
	}
	for _, key := range req.AdditionalKeys {
		if cfg.AdditionalString(key) == "" {
			return false
		}
	}
	return true
}

// UpdateConfig shallow-merges the partial into the named integration's
// config and persists the catalog. Names outside the catalog are a
// no-op.
func (s *Store) UpdateConfig(ctx context.Context, name string, partial Partial) {
	if !Known(name) {
		if s.logger != nil {
			s.logger.Warn("Ignoring update for unknown integration", "name", name)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[name]
	if !ok {
		cfg = domain.DefaultIntegrationConfig()
	}
	if partial.APIKey != nil {
		cfg.APIKey = *partial.APIKey
	}
	if partial.Endpoint != nil {
		cfg.Endpoint = *partial.Endpoint
	}
	if partial.Enabled != nil {
		cfg.Enabled = *partial.Enabled
	}
	if partial.AdditionalConfig != nil {
		cfg.AdditionalConfig = partial.AdditionalConfig
	}
	s.configs[name] = cfg

	s.save(ctx)
}

// ResetConfig restores the named integration to its inert default.
func (s *Store) ResetConfig(ctx context.Context, name string) {
	if !Known(name) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.configs, name)
	s.save(ctx)
}

// ResetAllConfigs restores every integration to its inert default.
func (s *Store) ResetAllConfigs(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs = make(map[string]domain.IntegrationConfig)
	s.save(ctx)
}

// ExportConfigs serializes the full catalog, including unconfigured
// integrations at their defaults, as indented JSON.
func (s *Store) ExportConfigs() (string, error) {
	s.mu.RLock()
	full := make(map[string]domain.IntegrationConfig, len(Catalog))
	for name := range Catalog {
		if cfg, ok := s.configs[name]; ok {
			full[name] = cfg.Clone()
		} else {
			full[name] = domain.DefaultIntegrationConfig()
		}
	}
	s.mu.RUnlock()

	data, err := json.Marshal(full, jsontext.WithIndent("  "))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportConfigs replaces the entire catalog from a JSON payload. A
// parse failure returns false and leaves the existing state untouched;
// there is no partial import. Names outside the catalog are dropped.
func (s *Store) ImportConfigs(ctx context.Context, payload string) bool {
	var incoming map[string]domain.IntegrationConfig
	if err := json.Unmarshal([]byte(payload), &incoming); err != nil {
		if s.logger != nil {
			s.logger.Warn("Rejected integration import", "error", err)
		}
		return false
	}

	replacement := make(map[string]domain.IntegrationConfig)
	for name, cfg := range incoming {
		if Known(name) {
			replacement[name] = cfg
		} else if s.logger != nil {
			s.logger.Warn("Dropping unknown integration from import", "name", name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs = replacement
	s.save(ctx)

	if s.logger != nil {
		s.logger.Info("Integration catalog imported", "configured", len(replacement))
	}
	return true
}
