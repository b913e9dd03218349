package domain

// Role represents the user's permission level in the application.
type Role string

const (
	// RoleAdmin grants access to moderation and integration management.
	RoleAdmin Role = "admin"
	// RoleUser grants standard learner access.
	RoleUser Role = "user"
)

// User represents the authenticated identity owned by the session store.
// The embedded subscription is replaced wholesale, never field-by-field,
// so status and expiry can't drift apart.
type User struct {
	Timestamps
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	DisplayName  string        `json:"display_name"`
	AvatarURL    string        `json:"avatar_url,omitempty"`
	AvatarColor  string        `json:"avatar_color,omitempty"`
	Role         Role          `json:"role"`
	SecretHash   string        `json:"secret_hash,omitempty"` // Argon2 encoded, never exposed outside the partition
	Subscription *Subscription `json:"subscription,omitempty"`
}

// IsAdmin returns true if the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Name returns the best available display name for the user.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Clone returns a deep copy of the user. Cross-store reads hand out
// clones so no store ever holds a live pointer into another store's data.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Subscription != nil {
		sub := *u.Subscription
		clone.Subscription = &sub
	}
	return &clone
}
