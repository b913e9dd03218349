package video

import (
	"context"

	"github.com/musclemap/musclemap-client/internal/domain"
)

// Moderation drives the review state machine over the comments the
// Store owns. It does not enforce authorization; gating the operations
// behind an administrative surface is the caller's job.
type Moderation struct {
	store *Store
}

// NewModeration wraps the store's moderation operations.
func NewModeration(store *Store) *Moderation {
	return &Moderation{store: store}
}

// Report marks an approved comment as flagged, or increments the report
// count of an already flagged one. The latest reason wins. Pending and
// unknown comments are untouched.
func (m *Moderation) Report(ctx context.Context, commentID, reason string) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, _, _ := s.findComment(commentID)
	if comment == nil {
		return
	}

	switch comment.Status {
	case domain.CommentApproved:
		comment.Status = domain.CommentFlagged
	case domain.CommentFlagged:
		// stays flagged
	default:
		return
	}
	comment.ReportCount++
	comment.ReportReason = reason
	s.save(ctx)

	if s.logger != nil {
		s.logger.Info("Comment reported",
			"comment_id", commentID,
			"report_count", comment.ReportCount,
		)
	}
}

// Approve returns a flagged or pending comment to the approved state
// and clears its report count and reason. Approving an already approved
// comment is a no-op.
func (m *Moderation) Approve(ctx context.Context, commentID string) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, _, _ := s.findComment(commentID)
	if comment == nil {
		return
	}
	if comment.Status != domain.CommentFlagged && comment.Status != domain.CommentPending {
		return
	}

	comment.Status = domain.CommentApproved
	comment.ReportCount = 0
	comment.ReportReason = ""
	s.save(ctx)
}

// Remove deletes the comment outright. No tombstone is kept, so the
// removal is terminal: later Report or Approve calls on the same ID
// find nothing and do nothing.
func (m *Moderation) Remove(ctx context.Context, commentID string) {
	m.store.DeleteComment(ctx, commentID)
}

// DeleteComment removes a comment from its thread. Unknown IDs are a
// no-op. Empty threads are dropped from the map.
func (s *Store) DeleteComment(ctx context.Context, commentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, itemID, idx := s.findComment(commentID)
	if comment == nil {
		return
	}

	thread := s.comments[itemID]
	s.comments[itemID] = append(thread[:idx], thread[idx+1:]...)
	if len(s.comments[itemID]) == 0 {
		delete(s.comments, itemID)
	}
	s.save(ctx)

	if s.logger != nil {
		s.logger.Info("Comment removed", "comment_id", commentID, "item_id", itemID)
	}
}
