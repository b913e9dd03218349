package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstThenDenied(t *testing.T) {
	kl := New(0.001, 3) // effectively no refill during the test

	for i := range 3 {
		assert.True(t, kl.Allow("a@example.com"), "attempt %d should be allowed", i)
	}
	assert.False(t, kl.Allow("a@example.com"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	kl := New(0.001, 1)

	assert.True(t, kl.Allow("a@example.com"))
	assert.False(t, kl.Allow("a@example.com"))
	assert.True(t, kl.Allow("b@example.com"))
}

func TestReset_RestoresBurst(t *testing.T) {
	kl := New(0.001, 1)

	assert.True(t, kl.Allow("a@example.com"))
	assert.False(t, kl.Allow("a@example.com"))

	kl.Reset("a@example.com")
	assert.True(t, kl.Allow("a@example.com"))
}
