package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/isaacphi/tirc/internal/domain"
	"github.com/isaacphi/tirc/internal/repository"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type profileRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepo{db: db, now: time.Now}
}

func (r *profileRepo) Touch(ctx context.Context, profile *domain.Profile) error {
	profile.LastUsedAt = r.now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Profile
		err := tx.Where("nickname = ? AND host = ? AND port = ?", profile.Nickname, profile.Host, profile.Port).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errors.Wrap(tx.Create(profile).Error, "failed to create profile")
		case err != nil:
			return errors.Wrap(err, "failed to look up profile")
		}

		existing.Description = profile.Description
		existing.LastUsedAt = profile.LastUsedAt
		if err := tx.Save(&existing).Error; err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		*profile = existing
		return nil
	})
}

func (r *profileRepo) List(ctx context.Context, limit int) ([]domain.Profile, error) {
	var profiles []domain.Profile
	query := r.db.WithContext(ctx).Order("last_used_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	return profiles, nil
}

func (r *profileRepo) GetMostRecent(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Order("last_used_at DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NoProfileError{}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get most recent profile")
	}
	return &profile, nil
}

func (r *profileRepo) FindByPartialID(ctx context.Context, partialID string) (*domain.Profile, error) {
	partialID = strings.ToLower(strings.TrimSpace(partialID))
	// Only UUID characters, so LIKE wildcards in the query cannot match.
	if partialID == "" || strings.Trim(partialID, "0123456789abcdef-") != "" {
		return nil, domain.NoProfileError{Query: partialID}
	}

	var profiles []domain.Profile
	if err := r.db.WithContext(ctx).
		Where("LOWER(CAST(id AS TEXT)) LIKE ?", partialID+"%").
		Limit(2).
		Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	switch len(profiles) {
	case 0:
		return nil, domain.NoProfileError{Query: partialID}
	case 1:
		return &profiles[0], nil
	default:
		return nil, domain.AmbiguousProfileError{Query: partialID, Matches: len(profiles)}
	}
}

func (r *profileRepo) Delete(ctx context.Context, profile *domain.Profile) error {
	return errors.Wrap(r.db.WithContext(ctx).Delete(profile).Error, "failed to delete profile")
}

func (r *profileRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database handle")
	}
	return sqlDB.Close()
}
