// Package video owns the video-storage partition: rating aggregates and
// the comment threads attached to content items. The rating, comment,
// and moderation operations are method sets over a single Store so the
// partition keeps exactly one writer.
package video

import (
	"context"
	"log/slog"
	"sync"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
)

const (
	partitionName = "video-storage"

	schemaVersion = 1
)

// IdentitySource supplies the acting identity for mutations. Mutations
// that need an identity silently no-op when it returns nil.
type IdentitySource interface {
	CurrentUser() *domain.User
}

// videoPartition is the persisted shape of video-storage.
type videoPartition struct {
	SchemaVersion int                          `json:"schema_version"`
	Comments      map[string][]*domain.Comment `json:"comments"`
	Ratings       []*domain.Rating             `json:"ratings"`
}

// Store holds the in-memory rating and comment state and is the only
// writer of the video-storage partition.
type Store struct {
	persist  *persist.Store
	identity IdentitySource
	logger   *slog.Logger

	mu       sync.RWMutex
	comments map[string][]*domain.Comment
	ratings  []*domain.Rating
}

// New creates the store and loads any persisted state. An absent or
// corrupt partition starts empty.
func New(ctx context.Context, p *persist.Store, identity IdentitySource, logger *slog.Logger) (*Store, error) {
	s := &Store{
		persist:  p,
		identity: identity,
		logger:   logger,
		comments: make(map[string][]*domain.Comment),
	}

	var part videoPartition
	found, err := p.Load(ctx, partitionName, &part)
	if err != nil {
		return nil, err
	}
	if found {
		if part.Comments != nil {
			s.comments = part.Comments
		}
		s.ratings = part.Ratings
		if logger != nil {
			logger.Debug("Video state loaded",
				"threads", len(s.comments),
				"ratings", len(s.ratings),
			)
		}
	}

	return s, nil
}

// save persists the full partition. Callers hold the write lock.
func (s *Store) save(ctx context.Context) {
	part := videoPartition{
		SchemaVersion: schemaVersion,
		Comments:      s.comments,
		Ratings:       s.ratings,
	}
	if err := s.persist.Save(ctx, partitionName, part); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist video state", "error", err)
	}
}

// findRating returns the aggregate for the pair, or nil. Callers hold
// at least the read lock.
func (s *Store) findRating(itemID, groupID string) *domain.Rating {
	for _, r := range s.ratings {
		if r.ItemID == itemID && r.GroupID == groupID {
			return r
		}
	}
	return nil
}

// findComment locates a comment by ID across all threads. Callers hold
// at least the read lock.
func (s *Store) findComment(commentID string) (*domain.Comment, string, int) {
	for itemID, thread := range s.comments {
		for i, c := range thread {
			if c.ID == commentID {
				return c, itemID, i
			}
		}
	}
	return nil, "", -1
}
