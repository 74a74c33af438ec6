package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/pkg/storage"
)

func TestProfileService_GetUsesSessionCache(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("FindByID", mock.Anything, "u1").Return(&domain.UserProfile{ID: "u1", Name: "Mila"}, nil).Once()

	svc := NewProfileService(repo, NewMediaService(nil), newLocalProfileCache(8), "")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, err := svc.GetProfile(ctx, "s1", "u1")
		require.NoError(t, err)
		assert.Equal(t, "Mila", p.Name)
	}
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestProfileService_Update(t *testing.T) {
	repo := new(mockProfileRepo)
	pc := newLocalProfileCache(8)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
		return p.ID == "u1" && p.Name == "New" && p.Email == "new@example.com"
	})).Return(nil)
	repo.On("FindByID", mock.Anything, "u1").Return(&domain.UserProfile{ID: "u1", Name: "New", Email: "new@example.com"}, nil)

	svc := NewProfileService(repo, NewMediaService(nil), pc, "")
	p, err := svc.UpdateProfile(context.Background(), "s1", "u1", &domain.UpdateProfileRequest{Name: "New", Email: "NEW@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "New", p.Name)
	cached, ok := pc.Get(context.Background(), "s1")
	require.True(t, ok)
	assert.Equal(t, "New", cached.Name, "session cache refreshed")

	_, err = svc.UpdateProfile(context.Background(), "s1", "u1", &domain.UpdateProfileRequest{Name: "", Email: "x@example.com"})
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestProfileService_UpdateDuplicateEmail(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := NewProfileService(repo, NewMediaService(nil), newLocalProfileCache(8), "")
	_, err := svc.UpdateProfile(context.Background(), "s1", "u1", &domain.UpdateProfileRequest{Name: "A", Email: "taken@example.com"})
	assert.True(t, errors.Is(err, common.ErrUserAlreadyExists))
}

func TestProfileService_UpdateRejectsAdminEmail(t *testing.T) {
	repo := new(mockProfileRepo)

	svc := NewProfileService(repo, NewMediaService(nil), newLocalProfileCache(8), "admin@example.com")
	_, err := svc.UpdateProfile(context.Background(), "s1", "u1", &domain.UpdateProfileRequest{Name: "A", Email: " Admin@Example.com "})

	assert.True(t, errors.Is(err, common.ErrUserAlreadyExists))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateAvatar(t *testing.T) {
	repo := new(mockProfileRepo)
	store := new(mockObjectStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png", mock.Anything).
		Return(&storage.UploadResult{URL: "https://cdn.example.com/avatars/u1.png"}, nil)
	repo.On("UpdateAvatar", mock.Anything, "u1", "https://cdn.example.com/avatars/u1.png").Return(nil)
	avatar := "https://cdn.example.com/avatars/u1.png"
	repo.On("FindByID", mock.Anything, "u1").Return(&domain.UserProfile{ID: "u1", AvatarURL: &avatar}, nil)

	svc := NewProfileService(repo, NewMediaService(store), newLocalProfileCache(8), "")
	p, err := svc.UpdateAvatar(context.Background(), "s1", "u1", "me.png", "image/png", int64(len(pngBytes)), bytes.NewReader(pngBytes))

	require.NoError(t, err)
	assert.Equal(t, avatar, *p.AvatarURL)
}
