package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository user profile data access
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves name and email on both the profile and the credential,
// so a changed email keeps working for login.
func (r *profileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.UserProfile{}).
			Where("id = ?", profile.ID).
			Updates(map[string]interface{}{"name": profile.Name, "email": profile.Email})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Credential{}).
			Where("user_id = ?", profile.ID).
			Update("email", profile.Email).Error
	})
	return translateWriteError(err)
}

func (r *profileRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.UserProfile{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
