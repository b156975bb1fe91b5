package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
	"github.com/aashnamahajan/DevelopersConnector/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements registration, login, auth-check and account removal.
type AuthService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	tokens   ports.TokenIssuer
	cache    ports.ProfileCache
	logger   zerolog.Logger
}

// NewAuthService wires the service. cache may be nil; when present the
// profile listing cache is invalidated on account deletion.
func NewAuthService(users ports.UserRepository, profiles ports.ProfileRepository, tokens ports.TokenIssuer, cache ports.ProfileCache, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, profiles: profiles, tokens: tokens, cache: cache, logger: logger}
}

// Register creates a new account and returns a signed token for it.
// A taken email fails with ErrUserExists before any write.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       gravatarURL(email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return token, nil
}

// Login verifies credentials and returns a signed token. An unknown email
// and a wrong password produce the same error so the failing field is not
// revealed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// CurrentUser loads the account behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// DeleteAccount removes the user's profile and the user record.
// TODO: remove the user's posts once the posts collection lands.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("profile cache invalidation failed")
		}
	}
	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}
