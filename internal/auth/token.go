// Package auth implements credential verification: HS256 bearer tokens
// signed with a process-wide secret, and argon2id password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog-platform/internal/domain"
)

// Token lifetimes for user logins. Admin tokens carry no expiry claim.
const (
	UserTokenTTL         = 24 * time.Hour
	UserTokenTTLRemember = 240 * time.Hour
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, badly signed, expired, or carrying an unknown role.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies bearer tokens.
type TokenManager struct {
	key []byte
}

// NewTokenManager creates a TokenManager for the given signing secret.
func NewTokenManager(secret string) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	return &TokenManager{key: []byte(secret)}, nil
}

// SignAdmin issues an admin token. Admin tokens carry only the email and
// role, with no expiry claim.
func (m *TokenManager) SignAdmin(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(domain.RoleAdmin),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// SignUser issues a user token carrying the full identity and an expiry.
func (m *TokenManager) SignUser(identity *domain.Identity, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email":   identity.Email,
		"name":    identity.DisplayName,
		"role":    string(domain.RoleUser),
		"user_id": identity.UserID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// Parse verifies a token string and maps its claims onto an Identity.
// Expiry, when present, is enforced by the parser; admin tokens without an
// expiry claim remain valid.
func (m *TokenManager) Parse(tokenString string) (*domain.Identity, error) {
	if len(tokenString) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	identity := &domain.Identity{}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if userID, ok := claims["user_id"].(string); ok {
		identity.UserID = userID
	}
	role, ok := claims["role"].(string)
	if !ok || !domain.IsValidRole(domain.Role(role)) || identity.Email == "" {
		return nil, ErrInvalidToken
	}
	identity.Role = domain.Role(role)

	return identity, nil
}
