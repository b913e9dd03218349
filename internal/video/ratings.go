package video

import (
	"context"

	"github.com/musclemap/musclemap-client/internal/domain"
)

// Rate records the current user's rating for an item within a group.
// Values outside 1..5, or a missing identity, are silent no-ops. A
// repeat rating from the same user is a correction: the vote count
// stays fixed and the mean is adjusted as if the old value had never
// been submitted.
func (s *Store) Rate(ctx context.Context, itemID, groupID string, value int) {
	if itemID == "" || groupID == "" || value < 1 || value > 5 {
		return
	}
	user := s.identity.CurrentUser()
	if user == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rating := s.findRating(itemID, groupID)
	if rating == nil {
		rating = domain.NewRating(itemID, groupID)
		s.ratings = append(s.ratings, rating)
	}
	rating.Rate(user.ID, value)

	s.save(ctx)

	if s.logger != nil {
		s.logger.Debug("Rating recorded",
			"item_id", itemID,
			"group_id", groupID,
			"average", rating.Average,
			"count", rating.Count,
		)
	}
}

// GetRating returns the aggregate for the pair as seen by the current
// user, or false when no one has rated it. Pure: reading never creates
// a record.
func (s *Store) GetRating(itemID, groupID string) (domain.RatingSummary, bool) {
	var viewerID string
	if user := s.identity.CurrentUser(); user != nil {
		viewerID = user.ID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rating := s.findRating(itemID, groupID)
	if rating == nil {
		return domain.RatingSummary{}, false
	}
	return rating.SummaryFor(viewerID), true
}
