package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/yuriblog/blog-backend/internal/domain"
)

type mockPostService struct{ mock.Mock }

func (m *mockPostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostService) CreatePost(ctx context.Context, req *domain.PostRequest) (*domain.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostService) UpdatePost(ctx context.Context, id int64, req *domain.PostRequest) (*domain.Post, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostService) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubscriberService struct{ mock.Mock }

func (m *mockSubscriberService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscriber), args.Error(1)
}

func (m *mockSubscriberService) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscriber), args.Error(1)
}

func (m *mockSubscriberService) DeleteSubscriber(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNewsletterService struct{ mock.Mock }

func (m *mockNewsletterService) Send(ctx context.Context, a *domain.Announcement) (*domain.NewsletterReport, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterReport), args.Error(1)
}

type mockCommentService struct{ mock.Mock }

func (m *mockCommentService) ListThreads(ctx context.Context, postID int64) ([]*domain.CommentThread, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CommentThread), args.Error(1)
}

func (m *mockCommentService) CreateComment(ctx context.Context, postID int64, author *domain.UserProfile, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	args := m.Called(ctx, postID, author, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentService) ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentService) AdminComments(ctx context.Context) (*domain.AdminComments, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminComments), args.Error(1)
}

func (m *mockCommentService) Reply(ctx context.Context, parentID, text string) (*domain.Comment, error) {
	args := m.Called(ctx, parentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) GetProfile(ctx context.Context, sessionID, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, sessionID, userID string, req *domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, sessionID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockProfileService) UpdateAvatar(ctx context.Context, sessionID, userID, filename, contentType string, size int64, body io.Reader) (*domain.UserProfile, error) {
	args := m.Called(ctx, sessionID, userID, filename, contentType, size, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
