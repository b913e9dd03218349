// Package content owns the muscle-storage partition: the read-mostly
// anatomy catalog the learning views are built from. It is written in
// bulk by the seed tool and read item by item afterwards.
package content

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
	"github.com/musclemap/musclemap-client/internal/util"
)

const (
	partitionName = "muscle-storage"

	schemaVersion = 1
)

// musclePartition is the persisted shape of muscle-storage.
type musclePartition struct {
	SchemaVersion int             `json:"schema_version"`
	Muscles       []domain.Muscle `json:"muscles"`
}

// Store holds the anatomy catalog and is the only writer of the
// muscle-storage partition.
type Store struct {
	persist *persist.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	muscles []domain.Muscle
	bySlug  map[string]int
}

// New creates the store and loads any persisted catalog. Absent or
// corrupt state starts empty.
func New(ctx context.Context, p *persist.Store, logger *slog.Logger) (*Store, error) {
	s := &Store{
		persist: p,
		logger:  logger,
		bySlug:  make(map[string]int),
	}

	var part musclePartition
	found, err := p.Load(ctx, partitionName, &part)
	if err != nil {
		return nil, err
	}
	if found {
		s.muscles = part.Muscles
		s.reindex()
		if logger != nil {
			logger.Debug("Anatomy catalog loaded", "muscles", len(s.muscles))
		}
	}

	return s, nil
}

// reindex rebuilds the slug index. Callers hold the write lock. On a
// duplicate slug the first entry wins.
func (s *Store) reindex() {
	s.bySlug = make(map[string]int, len(s.muscles))
	for i, m := range s.muscles {
		if _, seen := s.bySlug[m.Slug]; !seen {
			s.bySlug[m.Slug] = i
		}
	}
}

// ReplaceAll swaps in a complete new catalog and persists it. Entries
// without a slug get one derived from their name; entries with neither
// are skipped.
func (s *Store) ReplaceAll(ctx context.Context, muscles []domain.Muscle) error {
	kept := make([]domain.Muscle, 0, len(muscles))
	for _, m := range muscles {
		if m.Slug == "" {
			m.Slug = util.Slugify(m.Name)
		}
		if m.Slug == "" {
			if s.logger != nil {
				s.logger.Warn("Skipping catalog entry without slug or name")
			}
			continue
		}
		kept = append(kept, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.muscles = kept
	s.reindex()

	part := musclePartition{SchemaVersion: schemaVersion, Muscles: s.muscles}
	if err := s.persist.Save(ctx, partitionName, part); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("Anatomy catalog replaced", "muscles", len(kept))
	}
	return nil
}

// BySlug returns the muscle with the given slug.
func (s *Store) BySlug(slug string) (domain.Muscle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return domain.Muscle{}, false
	}
	return s.muscles[i], true
}

// ByGroup returns the muscles in a group, in catalog order.
func (s *Store) ByGroup(group string) []domain.Muscle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Muscle
	for _, m := range s.muscles {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out
}

// Groups returns the distinct muscle groups, sorted.
func (s *Store) Groups() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, m := range s.muscles {
		if !seen[m.Group] {
			seen[m.Group] = true
			out = append(out, m.Group)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the catalog size.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.muscles)
}
