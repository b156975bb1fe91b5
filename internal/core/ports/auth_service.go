package ports

import (
	"context"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login exchanges credentials for a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves the account behind an authenticated request.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	// DeleteAccount removes the user and their profile.
	DeleteAccount(ctx context.Context, userID string) error
}
