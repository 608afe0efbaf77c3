package repository

import (
	"context"

	"github.com/isaacphi/tirc/internal/domain"
)

type ProfileRepository interface {
	// Touch creates the profile, or refreshes LastUsedAt and Description on
	// the existing one with the same nickname, host and port.
	Touch(ctx context.Context, profile *domain.Profile) error
	List(ctx context.Context, limit int) ([]domain.Profile, error)
	GetMostRecent(ctx context.Context) (*domain.Profile, error)
	FindByPartialID(ctx context.Context, partialID string) (*domain.Profile, error)
	Delete(ctx context.Context, profile *domain.Profile) error
	Close() error
}
