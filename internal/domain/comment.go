package domain

import "time"

// ModerationStatus is the visibility/review state of a comment.
// There is no stored "removed" state: removal deletes the comment.
type ModerationStatus string

const (
	// CommentApproved is the default, visible state.
	CommentApproved ModerationStatus = "approved"
	// CommentPending awaits review before becoming visible.
	CommentPending ModerationStatus = "pending"
	// CommentFlagged has been reported by users and awaits a decision.
	CommentFlagged ModerationStatus = "flagged"
)

// Comment is a user comment on a content item. The author fields are a
// snapshot taken at creation time; later profile edits do not
// retroactively update posted comments.
type Comment struct {
	ID           string           `json:"id"`
	ItemID       string           `json:"item_id"`
	AuthorID     string           `json:"author_id"`
	AuthorName   string           `json:"author_name"`
	AuthorAvatar string           `json:"author_avatar,omitempty"`
	Body         string           `json:"body"`
	CreatedAt    time.Time        `json:"created_at"`
	LikedBy      map[string]bool  `json:"liked_by,omitempty"`
	Likes        int              `json:"likes"`
	ReplyCount   int              `json:"reply_count"`
	Status       ModerationStatus `json:"status"`
	ReportCount  int              `json:"report_count,omitempty"`
	ReportReason string           `json:"report_reason,omitempty"`
}

// ToggleLike flips the user's like and adjusts the counter by one in
// the matching direction. A second toggle reverts the first, so
// repeated identical UI events never double-count.
func (c *Comment) ToggleLike(userID string) {
	if c.LikedBy == nil {
		c.LikedBy = make(map[string]bool)
	}
	if c.LikedBy[userID] {
		delete(c.LikedBy, userID)
		c.Likes--
	} else {
		c.LikedBy[userID] = true
		c.Likes++
	}
}

// LikedByUser returns true if the given user currently likes the comment.
func (c *Comment) LikedByUser(userID string) bool {
	return c.LikedBy[userID]
}

// Clone returns a deep copy so readers never share mutable state with
// the owning store.
func (c *Comment) Clone() Comment {
	clone := *c
	if c.LikedBy != nil {
		clone.LikedBy = make(map[string]bool, len(c.LikedBy))
		for k, v := range c.LikedBy {
			clone.LikedBy[k] = v
		}
	}
	return clone
}
