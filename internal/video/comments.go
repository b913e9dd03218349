package video

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/id"
)

// AddComment appends a new approved comment authored by the current
// user. The author fields are a snapshot of the identity at call time.
// Returns the new comment's ID, or "" when there is no identity or the
// body is blank.
func (s *Store) AddComment(ctx context.Context, itemID, body string) string {
	return s.addComment(ctx, itemID, body, domain.CommentApproved)
}

// AddPendingComment appends a comment that must pass review before it
// is visible. Used by the administrative authoring path.
func (s *Store) AddPendingComment(ctx context.Context, itemID, body string) string {
	return s.addComment(ctx, itemID, body, domain.CommentPending)
}

func (s *Store) addComment(ctx context.Context, itemID, body string, status domain.ModerationStatus) string {
	body = strings.TrimSpace(body)
	if itemID == "" || body == "" {
		return ""
	}
	user := s.identity.CurrentUser()
	if user == nil {
		return ""
	}

	commentID, err := id.Generate("comment")
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to generate comment ID", "error", err)
		}
		return ""
	}

	comment := &domain.Comment{
		ID:           commentID,
		ItemID:       itemID,
		AuthorID:     user.ID,
		AuthorName:   user.Name(),
		AuthorAvatar: user.AvatarURL,
		Body:         body,
		CreatedAt:    time.Now(),
		Status:       status,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments[itemID] = append(s.comments[itemID], comment)
	s.save(ctx)

	if s.logger != nil {
		s.logger.Debug("Comment added",
			"comment_id", commentID,
			"item_id", itemID,
			"status", status,
		)
	}
	return commentID
}

// LikeComment toggles the current user's like on a comment. The first
// call likes, the second reverts; repeated identical UI events never
// double-count. Missing identity or unknown comment is a no-op.
func (s *Store) LikeComment(ctx context.Context, itemID, commentID string) {
	user := s.identity.CurrentUser()
	if user == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := s.commentInThread(itemID, commentID)
	if comment == nil {
		return
	}
	comment.ToggleLike(user.ID)
	s.save(ctx)
}

// Reply increments the comment's reply counter. The reply text itself
// is not materialized as a queryable comment here.
func (s *Store) Reply(ctx context.Context, commentID, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	user := s.identity.CurrentUser()
	if user == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment, _, _ := s.findComment(commentID)
	if comment == nil {
		return
	}
	comment.ReplyCount++
	s.save(ctx)
}

// CommentsForItem returns the item's comments, newest first. The slice
// and its elements are copies.
func (s *Store) CommentsForItem(itemID string) []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread := s.comments[itemID]
	out := make([]domain.Comment, 0, len(thread))
	for _, c := range thread {
		out = append(out, c.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) commentInThread(itemID, commentID string) *domain.Comment {
	for _, c := range s.comments[itemID] {
		if c.ID == commentID {
			return c
		}
	}
	return nil
}
