package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/pkg/mailer"
	"github.com/yuriblog/blog-backend/pkg/storage"
)

// --- Mock SubscriberRepository ---

type mockSubscriberRepo struct {
	mock.Mock
}

func (m *mockSubscriberRepo) List(ctx context.Context) ([]*domain.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscriber), args.Error(1)
}

func (m *mockSubscriberRepo) ListEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockSubscriberRepo) Create(ctx context.Context, sub *domain.Subscriber) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock mailer.Sender ---

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) List(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) TitlesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) list(args mock.Arguments) ([]*domain.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return m.list(m.Called(ctx, postID))
}

func (m *mockCommentRepo) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	return m.list(m.Called(ctx))
}

func (m *mockCommentRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock GalleryRepository ---

type mockGalleryRepo struct {
	mock.Mock
}

func (m *mockGalleryRepo) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GalleryItem), args.Error(1)
}

func (m *mockGalleryRepo) FindByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryItem), args.Error(1)
}

func (m *mockGalleryRepo) Create(ctx context.Context, item *domain.GalleryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockGalleryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock ProfileRepository ---

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	return m.Called(ctx, id, avatarURL).Error(0)
}

// --- Mock CredentialRepository ---

type mockCredentialRepo struct {
	mock.Mock
}

func (m *mockCredentialRepo) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *mockCredentialRepo) FindByUserID(ctx context.Context, userID string) (*domain.Credential, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *mockCredentialRepo) Register(ctx context.Context, cred *domain.Credential, profile *domain.UserProfile) error {
	return m.Called(ctx, cred, profile).Error(0)
}

func (m *mockCredentialRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

// --- Mock ObjectStore ---

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, body, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
