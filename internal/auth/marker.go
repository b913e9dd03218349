package auth

import (
	"encoding/hex"
	"encoding/json/v2"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/musclemap/musclemap-client/internal/id"
)

const (
	markerIssuer   = "musclemap-client"
	markerAudience = "musclemap-session"
)

// MarkerClaims are the claims carried by a session marker token.
// The marker is the lightweight second recovery path: enough to prove
// "was logged in" without a full identity partition.
type MarkerClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`

	// Standard PASETO claims
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}

// MarkerService issues and verifies PASETO v4.local session markers.
type MarkerService struct {
	symmetricKey paseto.V4SymmetricKey
	ttl          time.Duration
}

// NewMarkerService creates a marker service from a hex-encoded 32-byte key.
func NewMarkerService(keyHex string, ttl time.Duration) (*MarkerService, error) {
	if len(keyHex) != keyHexLength {
		return nil, fmt.Errorf("PASETO v4 key must be exactly %d hex characters (%d bytes), got %d", keyHexLength, keyLength, len(keyHex))
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string for PASETO key: %w", err)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create PASETO symmetric key: %w", err)
	}

	return &MarkerService{symmetricKey: key, ttl: ttl}, nil
}

// Issue creates an encrypted marker token for the identity.
func (s *MarkerService) Issue(userID, email string) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuer(markerIssuer)
	token.SetSubject(userID)
	token.SetAudience(markerAudience)
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.ttl))

	tokenID, err := id.Generate("marker")
	if err != nil {
		return "", fmt.Errorf("generate marker ID: %w", err)
	}
	token.SetJti(tokenID)

	//nolint:errcheck // Token.Set only errors on invalid types, which we control
	_ = token.Set("user_id", userID)
	//nolint:errcheck // Token.Set only errors on invalid types, which we control
	_ = token.Set("email", email)

	return token.V4Encrypt(s.symmetricKey, nil), nil
}

// Verify parses and validates a marker token, returning its claims.
func (s *MarkerService) Verify(tokenString string) (*MarkerClaims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.ForAudience(markerAudience))
	parser.AddRule(paseto.IssuedBy(markerIssuer))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(s.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid marker: %w", err)
	}

	var claims MarkerClaims
	if err := json.Unmarshal(token.ClaimsJSON(), &claims); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}

	return &claims, nil
}

// TTL returns the configured marker lifetime.
func (s *MarkerService) TTL() time.Duration {
	return s.ttl
}
