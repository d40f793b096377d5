package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// AuthService handles registration and the two login paths. The admin
// account lives in configuration, not the users table; registered accounts
// always carry the user role.
type AuthService struct {
	users             repository.UserRepository
	validator         *validator.Validator
	tokens            *auth.TokenManager
	adminEmail        string
	adminPasswordHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator, tokens *auth.TokenManager, adminEmail, adminPasswordHash string) *AuthService {
	return &AuthService{
		users:             users,
		validator:         v,
		tokens:            tokens,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

// AdminLogin checks the credentials against the configured admin account and
// issues a token carrying only the email and admin role, with no expiry.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	if email != s.adminEmail {
		metrics.ObserveAuthAttempt("admin_login", "failure")
		return nil, ErrInvalidCredentials
	}

	match, err := auth.VerifyPassword(password, s.adminPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify admin password: %w", err)
	}
	if !match {
		metrics.ObserveAuthAttempt("admin_login", "failure")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.SignAdmin(email)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}

	metrics.ObserveAuthAttempt("admin_login", "success")

	return &LoginResult{
		Token: token,
		User: &domain.User{
			Email: email,
			Role:  domain.RoleAdmin,
		},
	}, nil
}

// Register creates a user-role account with an argon2id password hash.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (*domain.User, error) {
	if err := s.validator.ValidateRegistration(email, displayName, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			metrics.ObserveAuthAttempt("register", "conflict")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.ObserveAuthAttempt("register", "success")

	return user, nil
}

// Login verifies a registered account and issues an expiring token: one day
// by default, ten days with rememberMe.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResult, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		metrics.ObserveAuthAttempt("login", "failure")
		return nil, ErrInvalidCredentials
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		metrics.ObserveAuthAttempt("login", "failure")
		return nil, ErrInvalidCredentials
	}

	ttl := auth.UserTokenTTL
	if rememberMe {
		ttl = auth.UserTokenTTLRemember
	}

	token, err := s.tokens.SignUser(&domain.Identity{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        domain.RoleUser,
		UserID:      user.ID,
	}, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign user token: %w", err)
	}

	metrics.ObserveAuthAttempt("login", "success")

	return &LoginResult{
		Token:     token,
		User:      user,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}
