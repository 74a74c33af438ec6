package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"gorm.io/gorm"
)

// ProfileService reads and edits the signed-in user's profile
type ProfileService interface {
	GetProfile(ctx context.Context, sessionID, userID string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, sessionID, userID string, req *domain.UpdateProfileRequest) (*domain.UserProfile, error)
	UpdateAvatar(ctx context.Context, sessionID, userID, filename, contentType string, size int64, body io.Reader) (*domain.UserProfile, error)
}

type profileService struct {
	repo          repository.ProfileRepository
	media         *MediaService
	cache         ProfileCache
	reservedEmail string
}

// NewProfileService creates a new ProfileService.
// reservedEmail is the admin address; no user may take it.
func NewProfileService(repo repository.ProfileRepository, media *MediaService, profileCache ProfileCache, reservedEmail string) ProfileService {
	return &profileService{repo: repo, media: media, cache: profileCache, reservedEmail: reservedEmail}
}

// GetProfile returns the cached profile for the session, loading it once
func (s *profileService) GetProfile(ctx context.Context, sessionID, userID string) (*domain.UserProfile, error) {
	if profile, ok := s.cache.Get(ctx, sessionID); ok && profile.ID == userID {
		return profile, nil
	}
	return s.reload(ctx, sessionID, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, sessionID, userID string, req *domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", common.ErrInvalidInput)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if isReservedEmail(email, s.reservedEmail) {
		return nil, common.ErrUserAlreadyExists
	}

	err = s.repo.Update(ctx, &domain.UserProfile{ID: userID, Name: name, Email: email})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, common.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return nil, common.ErrUserAlreadyExists
	case err != nil:
		return nil, err
	}
	return s.reload(ctx, sessionID, userID)
}

func (s *profileService) UpdateAvatar(ctx context.Context, sessionID, userID, filename, contentType string, size int64, body io.Reader) (*domain.UserProfile, error) {
	result, err := s.media.UploadImage(ctx, PrefixAvatars, filename, contentType, size, body)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAvatar(ctx, userID, result.URL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return s.reload(ctx, sessionID, userID)
}

func (s *profileService) reload(ctx context.Context, sessionID, userID string) (*domain.UserProfile, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	s.cache.Set(ctx, sessionID, profile)
	return profile, nil
}
