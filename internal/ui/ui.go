// Package ui owns the ui-storage partition: the theme and language
// selections that survive application reloads.
package ui

import (
	"context"
	"log/slog"
	"sync"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
)

const (
	partitionName = "ui-storage"

	schemaVersion = 1
)

// uiPartition is the persisted shape of ui-storage.
type uiPartition struct {
	SchemaVersion int                `json:"schema_version"`
	Preferences   domain.Preferences `json:"preferences"`
}

// Store holds the UI preferences and is the only writer of the
// ui-storage partition.
type Store struct {
	persist *persist.Store
	logger  *slog.Logger

	mu    sync.RWMutex
	prefs domain.Preferences
}

// New creates the store and loads persisted preferences. Absent or
// corrupt state falls back to the defaults.
func New(ctx context.Context, p *persist.Store, logger *slog.Logger) (*Store, error) {
	s := &Store{
		persist: p,
		logger:  logger,
		prefs:   domain.DefaultPreferences(),
	}

	var part uiPartition
	found, err := p.Load(ctx, partitionName, &part)
	if err != nil {
		return nil, err
	}
	if found {
		s.prefs = normalize(part.Preferences)
	}

	return s, nil
}

// normalize fills blank or unrecognized fields with defaults so a
// partially-written partition still yields usable preferences.
func normalize(prefs domain.Preferences) domain.Preferences {
	defaults := domain.DefaultPreferences()
	if prefs.Theme != domain.ThemeLight && prefs.Theme != domain.ThemeDark {
		prefs.Theme = defaults.Theme
	}
	if prefs.Language == "" {
		prefs.Language = defaults.Language
	}
	return prefs
}

// Preferences returns the current selections.
func (s *Store) Preferences() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetTheme switches the color scheme and persists. Unrecognized themes
// are a no-op.
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Theme = theme
	s.save(ctx)
}

// SetLanguage switches the UI language and persists. A blank language
// is a no-op.
func (s *Store) SetLanguage(ctx context.Context, language string) {
	if language == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Language = language
	s.save(ctx)
}

// save persists the preferences. Callers hold the write lock.
func (s *Store) save(ctx context.Context) {
	part := uiPartition{SchemaVersion: schemaVersion, Preferences: s.prefs}
	if err := s.persist.Save(ctx, partitionName, part); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist UI preferences", "error", err)
	}
}
