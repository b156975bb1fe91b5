package ports

import (
	"context"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

// ProfileRepository defines persistence operations for profile documents.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// Save replaces the stored document for p.UserID with p.
	Save(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
