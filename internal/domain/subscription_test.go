package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrial(t *testing.T) {
	sub := NewTrial("sub-123")

	assert.Equal(t, SubscriptionTrial, sub.Status)
	assert.Equal(t, PlanBasic, sub.Plan)
	assert.False(t, sub.AutoRenew)
	assert.True(t, sub.IsCurrent())
	assert.Equal(t, 13, sub.DaysRemaining())
}

func TestSubscription_IsCurrent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		sub     *Subscription
		current bool
	}{
		{"nil", nil, false},
		{"active unexpired", &Subscription{Status: SubscriptionActive, ExpiresAt: now.Add(time.Hour)}, true},
		{"active expired", &Subscription{Status: SubscriptionActive, ExpiresAt: now.Add(-time.Hour)}, false},
		{"trial unexpired", &Subscription{Status: SubscriptionTrial, ExpiresAt: now.Add(time.Hour)}, true},
		{"canceled", &Subscription{Status: SubscriptionCanceled, ExpiresAt: now.Add(time.Hour)}, false},
		{"expired status", &Subscription{Status: SubscriptionExpired, ExpiresAt: now.Add(time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.current, tt.sub.IsCurrent())
		})
	}
}

func TestSubscription_DaysRemaining(t *testing.T) {
	past := &Subscription{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.Zero(t, past.DaysRemaining())

	var nilSub *Subscription
	assert.Zero(t, nilSub.DaysRemaining())
}
