// Package session owns the authenticated identity and its subscription.
// Identity is persisted in the user-storage partition, with a
// lightweight PASETO marker stored independently as a second recovery
// path.
package session

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"sync"

	"github.com/musclemap/musclemap-client/internal/auth"
	"github.com/musclemap/musclemap-client/internal/color"
	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/id"
	"github.com/musclemap/musclemap-client/internal/persist"
	"github.com/musclemap/musclemap-client/internal/ratelimit"
	"github.com/musclemap/musclemap-client/internal/validation"
)

const (
	partitionName = "user-storage"
	markerKey     = "session-marker"

	schemaVersion = 1
)

// State is the session recovery outcome. Marker-only recovery yields
// StateProvisional: authenticated, but with no full profile loaded.
// Callers must not assume CurrentUser() is non-nil after a successful
// CheckSession.
type State int

const (
	// StateAnonymous means no identity and no marker.
	StateAnonymous State = iota
	// StateProvisional means only the marker survived; the profile
	// partition was absent or corrupt.
	StateProvisional
	// StateAuthenticated means the full identity is loaded.
	StateAuthenticated
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateProvisional:
		return "provisional"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// AdminCredentials is the distinguished administrative credential pair.
type AdminCredentials struct {
	Email  string
	Secret string
}

// userPartition is the persisted shape of user-storage.
type userPartition struct {
	SchemaVersion int          `json:"schema_version"`
	User          *domain.User `json:"user"`
}

// loginInput carries the credentials through validation.
type loginInput struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required,min=8"`
}

// Store owns identity, authentication, and subscription state.
type Store struct {
	persist  *persist.Store
	markers  *auth.MarkerService
	limiter  *ratelimit.KeyedLimiter
	validate *validation.Validator
	logger   *slog.Logger
	admin    AdminCredentials

	mu      sync.RWMutex
	state   State
	current *domain.User
}

// New creates a session store. The logger may be nil.
func New(p *persist.Store, markers *auth.MarkerService, limiter *ratelimit.KeyedLimiter, admin AdminCredentials, logger *slog.Logger) *Store {
	return &Store{
		persist:  p,
		markers:  markers,
		limiter:  limiter,
		validate: validation.New(),
		logger:   logger,
		admin:    admin,
	}
}

// Login authenticates the credential pair. Invalid credentials return
// false, never an error. The administrative pair short-circuits to a
// pre-built admin identity; any other well-formed email with a long
// enough secret synthesizes a fresh identity with a 14-day trial.
//
// Roles are explicit at account creation: synthesized accounts are
// always RoleUser, and RoleAdmin is only reachable through the
// administrative credential path.
func (s *Store) Login(ctx context.Context, email, secret string) bool {
	if err := s.validate.Validate(loginInput{Email: email, Secret: secret}); err != nil {
		return false
	}

	key := strings.ToLower(email)
	if !s.limiter.Allow(key) {
		if s.logger != nil {
			s.logger.Warn("Login throttled", "email", key)
		}
		return false
	}

	var user *domain.User
	if s.isAdminPair(email, secret) {
		user = s.buildAdminIdentity()
	} else {
		var ok bool
		user, ok = s.synthesizeIdentity(email, secret)
		if !ok {
			return false
		}
	}
	if user == nil {
		return false
	}

	if !s.persistIdentity(ctx, user) {
		return false
	}

	s.mu.Lock()
	s.current = user
	s.state = StateAuthenticated
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("User logged in",
			"user_id", user.ID,
			"role", user.Role,
		)
	}
	return true
}

// isAdminPair compares in constant time so the admin secret cannot be
// probed character by character.
func (s *Store) isAdminPair(email, secret string) bool {
	emailMatch := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.admin.Email)))
	secretMatch := subtle.ConstantTimeCompare([]byte(secret), []byte(s.admin.Secret))
	return emailMatch&secretMatch == 1
}

func (s *Store) buildAdminIdentity() *domain.User {
	userID, err := id.Generate("user")
	if err != nil {
		return nil
	}

	sub := domain.NewTrial(id.MustGenerate("sub"))
	sub.Status = domain.SubscriptionActive
	sub.Plan = domain.PlanProfessional
	sub.ExpiresAt = sub.StartedAt.AddDate(1, 0, 0)
	sub.AutoRenew = true

	user := &domain.User{
		ID:           userID,
		Email:        s.admin.Email,
		DisplayName:  "Administrator",
		AvatarColor:  color.ForUser(userID),
		Role:         domain.RoleAdmin,
		Subscription: sub,
	}
	user.InitTimestamps()
	return user
}

func (s *Store) synthesizeIdentity(email, secret string) (*domain.User, bool) {
	userID, err := id.Generate("user")
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to generate user ID", "error", err)
		}
		return nil, false
	}

	secretHash, err := auth.HashSecret(secret)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to hash secret", "error", err)
		}
		return nil, false
	}

	displayName, _, _ := strings.Cut(email, "@")

	user := &domain.User{
		ID:           userID,
		Email:        email,
		DisplayName:  displayName,
		AvatarColor:  color.ForUser(userID),
		Role:         domain.RoleUser,
		SecretHash:   secretHash,
		Subscription: domain.NewTrial(id.MustGenerate("sub")),
	}
	user.InitTimestamps()
	return user, true
}

// persistIdentity writes both recovery paths: the full partition and
// the independent marker.
func (s *Store) persistIdentity(ctx context.Context, user *domain.User) bool {
	part := userPartition{SchemaVersion: schemaVersion, User: user}
	if err := s.persist.Save(ctx, partitionName, part); err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to persist identity", "error", err)
		}
		return false
	}

	marker, err := s.markers.Issue(user.ID, user.Email)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to issue session marker", "error", err)
		}
		return false
	}
	if err := s.persist.SaveRaw(ctx, markerKey, []byte(marker)); err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to store session marker", "error", err)
		}
		return false
	}

	return true
}

// Logout clears the in-memory identity, the session marker, and the
// persisted identity partition, so a later CheckSession cannot
// resurrect the logged-out identity. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	wasLoggedIn := s.current != nil || s.state != StateAnonymous
	var email string
	if s.current != nil {
		email = s.current.Email
	}
	s.current = nil
	s.state = StateAnonymous
	s.mu.Unlock()

	// A deliberate logout should not leave the account throttled.
	if email != "" {
		s.limiter.Reset(strings.ToLower(email))
	}

	if err := s.persist.Delete(ctx, markerKey); err != nil && s.logger != nil {
		s.logger.Error("Failed to erase session marker", "error", err)
	}
	if err := s.persist.Delete(ctx, partitionName); err != nil && s.logger != nil {
		s.logger.Error("Failed to erase identity partition", "error", err)
	}

	if wasLoggedIn && s.logger != nil {
		s.logger.Info("User logged out")
	}
}

// CheckSession attempts recovery, in order: (1) the full identity
// partition, (2) the lightweight marker, (3) nothing. A marker-only
// recovery returns true with State() == StateProvisional and no
// CurrentUser; a marker that fails verification is treated as absent.
func (s *Store) CheckSession(ctx context.Context) bool {
	var part userPartition
	found, err := s.persist.Load(ctx, partitionName, &part)
	if err != nil && s.logger != nil {
		s.logger.Error("Failed to read identity partition", "error", err)
	}
	if found && wellFormed(part.User) {
		s.mu.Lock()
		s.current = part.User
		s.state = StateAuthenticated
		s.mu.Unlock()
		return true
	}

	raw, present, err := s.persist.LoadRaw(ctx, markerKey)
	if err != nil && s.logger != nil {
		s.logger.Error("Failed to read session marker", "error", err)
	}
	if present {
		if _, err := s.markers.Verify(string(raw)); err == nil {
			s.mu.Lock()
			s.current = nil
			s.state = StateProvisional
			s.mu.Unlock()
			if s.logger != nil {
				s.logger.Info("Session recovered from marker only; profile incomplete")
			}
			return true
		}
		// Stale or tampered marker: clean it up.
		_ = s.persist.Delete(ctx, markerKey)
	}

	s.mu.Lock()
	s.current = nil
	s.state = StateAnonymous
	s.mu.Unlock()
	return false
}

func wellFormed(u *domain.User) bool {
	return u != nil && u.ID != "" && u.Email != ""
}

// UpdateSubscription replaces the subscription wholesale. A missing
// identity is a silent no-op, never a crash.
func (s *Store) UpdateSubscription(ctx context.Context, sub *domain.Subscription) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	if sub != nil {
		cloned := *sub
		s.current.Subscription = &cloned
	} else {
		s.current.Subscription = nil
	}
	s.current.Touch()
	user := s.current
	s.mu.Unlock()

	s.savePartition(ctx, user)
}

// UpdateUser replaces the profile wholesale. The identity's ID,
// credential hash, and creation time survive the replacement; a missing
// identity is a silent no-op.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) {
	if user == nil {
		return
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	replacement := user.Clone()
	replacement.ID = s.current.ID
	replacement.CreatedAt = s.current.CreatedAt
	if replacement.SecretHash == "" {
		replacement.SecretHash = s.current.SecretHash
	}
	if replacement.Subscription == nil {
		replacement.Subscription = s.current.Subscription
	}
	replacement.Touch()
	s.current = replacement
	s.mu.Unlock()

	s.savePartition(ctx, replacement)
}

func (s *Store) savePartition(ctx context.Context, user *domain.User) {
	part := userPartition{SchemaVersion: schemaVersion, User: user}
	if err := s.persist.Save(ctx, partitionName, part); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist identity", "error", err)
	}
}

// CurrentUser returns a copy of the loaded identity, or nil when
// anonymous or provisional. Callers get a clone, never a live pointer.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// State returns the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoggedIn reports whether the session is authenticated or provisional.
func (s *Store) IsLoggedIn() bool {
	return s.State() != StateAnonymous
}
