package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComment_ToggleLikeRestoresState(t *testing.T) {
	c := &Comment{ID: "comment-1"}

	c.ToggleLike("alice")
	assert.Equal(t, 1, c.Likes)
	assert.True(t, c.LikedByUser("alice"))

	c.ToggleLike("alice")
	assert.Zero(t, c.Likes)
	assert.False(t, c.LikedByUser("alice"))
}

func TestComment_CloneIsIndependent(t *testing.T) {
	c := &Comment{ID: "comment-1"}
	c.ToggleLike("alice")

	clone := c.Clone()
	clone.ToggleLike("bob")

	assert.Equal(t, 1, c.Likes)
	assert.Equal(t, 2, clone.Likes)
	assert.False(t, c.LikedByUser("bob"))
}
