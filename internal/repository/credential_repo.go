package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// CredentialRepository identity store access
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Credential, error)
	// Register inserts the credential and its profile atomically.
	// Returns ErrDuplicate when the email is taken.
	Register(ctx context.Context, cred *domain.Credential, profile *domain.UserProfile) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) FindByUserID(ctx context.Context, userID string) (*domain.Credential, error) {
	var cred domain.Credential
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) Register(ctx context.Context, cred *domain.Credential, profile *domain.UserProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cred).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
	return translateWriteError(err)
}

func (r *credentialRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Credential{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
