package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForUser_Deterministic(t *testing.T) {
	first := ForUser("user-abc123")
	second := ForUser("user-abc123")
	assert.Equal(t, first, second)
}

func TestForUser_HexFormat(t *testing.T) {
	for _, id := range []string{"user-abc123", "user-xyz789", "", "a"} {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, ForUser(id))
	}
}

func TestForUser_VariesByUser(t *testing.T) {
	assert.NotEqual(t, ForUser("user-abc123"), ForUser("user-xyz789"))
}
