package ports

import (
	"context"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

// ProfileCache caches the full profile listing. A nil slice from GetList
// means miss. Implementations must never return stale data after Invalidate.
type ProfileCache interface {
	GetList(ctx context.Context) ([]*domain.Profile, error)
	SetList(ctx context.Context, profiles []*domain.Profile) error
	Invalidate(ctx context.Context) error
}
