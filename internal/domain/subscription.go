package domain

import "time"

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionTrial is the introductory period granted at signup.
	SubscriptionTrial SubscriptionStatus = "trial"
	// SubscriptionActive is a paid, current subscription.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionExpired means the expiry date has passed without renewal.
	SubscriptionExpired SubscriptionStatus = "expired"
	// SubscriptionCanceled means the user ended the plan before expiry.
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// PlanTier identifies the feature level of a subscription.
type PlanTier string

const (
	// PlanBasic covers the standard learning content.
	PlanBasic PlanTier = "basic"
	// PlanProfessional adds the clinical reference material.
	PlanProfessional PlanTier = "professional"
)

// TrialDuration is the length of the introductory trial granted at signup.
const TrialDuration = 14 * 24 * time.Hour

// Subscription is the entitlement record embedded in User.
// Its lifecycle is tied to the identity: created at login/signup and
// replaced as a whole value on plan change.
type Subscription struct {
	ID        string             `json:"id"`
	Status    SubscriptionStatus `json:"status"`
	Plan      PlanTier           `json:"plan"`
	StartedAt time.Time          `json:"started_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	AutoRenew bool               `json:"auto_renew"`
}

// NewTrial creates a trial subscription starting now.
func NewTrial(id string) *Subscription {
	now := time.Now()
	return &Subscription{
		ID:        id,
		Status:    SubscriptionTrial,
		Plan:      PlanBasic,
		StartedAt: now,
		ExpiresAt: now.Add(TrialDuration),
		AutoRenew: false,
	}
}

// IsCurrent returns true if the subscription grants access right now.
func (s *Subscription) IsCurrent() bool {
	if s == nil {
		return false
	}
	switch s.Status {
	case SubscriptionActive, SubscriptionTrial:
		return time.Now().Before(s.ExpiresAt)
	case SubscriptionExpired, SubscriptionCanceled:
		return false
	default:
		return false
	}
}

// DaysRemaining returns whole days until expiry, never negative.
func (s *Subscription) DaysRemaining() int {
	if s == nil {
		return 0
	}
	remaining := time.Until(s.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return int(remaining / (24 * time.Hour))
}
