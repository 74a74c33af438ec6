package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

var testAdmin = AdminIdentity{UserID: "admin", Email: "admin@example.com", Avatar: "https://cdn.example.com/admin.png"}

func strPtr(s string) *string { return &s }

func TestCommentService_ListThreads(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	posts.On("FindByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1, Title: "P"}, nil)
	comments.On("ListByPost", mock.Anything, int64(1)).Return([]*domain.Comment{
		mkComment("a", "", 0),
		mkComment("b", "a", 1),
		mkComment("c", "x", 2),
	}, nil)

	svc := NewCommentService(comments, posts, testAdmin)
	threads, err := svc.ListThreads(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, []string{"b"}, ids(threads[0].Replies))
}

func TestCommentService_ListThreads_PostMissing(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	posts.On("FindByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewCommentService(comments, posts, testAdmin).ListThreads(context.Background(), 9)

	assert.True(t, errors.Is(err, common.ErrPostNotFound))
	comments.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
}

func TestCommentService_CreateComment(t *testing.T) {
	author := &domain.UserProfile{ID: "u1", Name: "Mila", Email: "mila@example.com", AvatarURL: strPtr("https://a/1.svg")}

	t.Run("top-level", func(t *testing.T) {
		comments := new(mockCommentRepo)
		posts := new(mockPostRepo)
		posts.On("FindByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1}, nil)
		comments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)

		c, err := NewCommentService(comments, posts, testAdmin).
			CreateComment(context.Background(), 1, author, &domain.CreateCommentRequest{Text: "  hello  "})

		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "hello", c.Text)
		assert.Equal(t, "Mila", c.AuthorName)
		assert.Equal(t, "https://a/1.svg", c.AuthorAvatar)
		assert.Nil(t, c.ParentCommentID)
	})

	t.Run("reply on another post is rejected", func(t *testing.T) {
		comments := new(mockCommentRepo)
		posts := new(mockPostRepo)
		posts.On("FindByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1}, nil)
		comments.On("FindByID", mock.Anything, "p").Return(&domain.Comment{ID: "p", PostID: 2}, nil)

		_, err := NewCommentService(comments, posts, testAdmin).
			CreateComment(context.Background(), 1, author, &domain.CreateCommentRequest{Text: "hi", ParentCommentID: strPtr("p")})

		assert.True(t, errors.Is(err, common.ErrInvalidParent))
		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown parent", func(t *testing.T) {
		comments := new(mockCommentRepo)
		posts := new(mockPostRepo)
		posts.On("FindByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1}, nil)
		comments.On("FindByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

		_, err := NewCommentService(comments, posts, testAdmin).
			CreateComment(context.Background(), 1, author, &domain.CreateCommentRequest{Text: "hi", ParentCommentID: strPtr("nope")})

		assert.True(t, errors.Is(err, common.ErrInvalidParent))
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := NewCommentService(new(mockCommentRepo), new(mockPostRepo), testAdmin).
			CreateComment(context.Background(), 1, author, &domain.CreateCommentRequest{Text: "   "})
		assert.True(t, errors.Is(err, common.ErrInvalidInput))
	})
}

func TestCommentService_AdminComments(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)

	a := mkComment("a", "", 3)
	a.PostID = 1
	d := mkComment("d", "", 2)
	d.PostID = 5 // post deleted
	b := mkComment("b", "a", 4)
	b.PostID = 1
	orphan := mkComment("o", "gone", 1)

	comments.On("ListAll", mock.Anything).Return([]*domain.Comment{b, a, d, orphan}, nil)
	posts.On("TitlesByID", mock.Anything, []int64{1, 5}).Return(map[int64]string{1: "First post"}, nil)

	view, err := NewCommentService(comments, posts, testAdmin).AdminComments(context.Background())

	require.NoError(t, err)
	require.Len(t, view.Threads, 2)
	assert.Equal(t, "First post", view.Threads[0].PostTitle)
	assert.Equal(t, []string{"b"}, ids(view.Threads[0].Replies))
	assert.Equal(t, UnknownPostTitle, view.Threads[1].PostTitle)
	assert.Equal(t, []string{"o"}, ids(view.Orphans))
}

func TestCommentService_Reply(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)

	top := &domain.Comment{ID: "top", PostID: 3, CreatedAt: time.Now()}
	nested := &domain.Comment{ID: "r1", PostID: 3, ParentCommentID: strPtr("top")}
	comments.On("FindByID", mock.Anything, "top").Return(top, nil)
	comments.On("FindByID", mock.Anything, "r1").Return(nested, nil)
	comments.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)
	comments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)

	svc := NewCommentService(comments, posts, testAdmin)

	reply, err := svc.Reply(context.Background(), "top", "Thanks!")
	require.NoError(t, err)
	assert.Equal(t, domain.AdminResponseName, reply.AuthorName)
	assert.Equal(t, testAdmin.Avatar, reply.AuthorAvatar)
	assert.Equal(t, int64(3), reply.PostID)
	assert.Equal(t, "top", *reply.ParentCommentID)

	reply, err = svc.Reply(context.Background(), "r1", "Again")
	require.NoError(t, err)
	assert.Equal(t, "top", *reply.ParentCommentID, "reply to a reply attaches to the thread root")

	_, err = svc.Reply(context.Background(), "missing", "x")
	assert.True(t, errors.Is(err, common.ErrCommentNotFound))

	// reply whose thread root was deleted
	comments.On("FindByID", mock.Anything, "orphan").Return(&domain.Comment{ID: "orphan", PostID: 3, ParentCommentID: strPtr("gone")}, nil)
	comments.On("FindByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.Reply(context.Background(), "orphan", "x")
	assert.True(t, errors.Is(err, common.ErrInvalidParent))

	// reply under a reply never nests a third level
	comments.On("FindByID", mock.Anything, "deep").Return(&domain.Comment{ID: "deep", PostID: 3, ParentCommentID: strPtr("r1")}, nil)
	_, err = svc.Reply(context.Background(), "deep", "x")
	assert.True(t, errors.Is(err, common.ErrInvalidParent))
	comments.AssertNumberOfCalls(t, "Create", 2)

	_, err = svc.Reply(context.Background(), "top", " ")
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestCommentService_Delete(t *testing.T) {
	comments := new(mockCommentRepo)
	comments.On("Delete", mock.Anything, "a").Return(nil)
	comments.On("Delete", mock.Anything, "b").Return(gorm.ErrRecordNotFound)

	svc := NewCommentService(comments, new(mockPostRepo), testAdmin)
	assert.NoError(t, svc.DeleteComment(context.Background(), "a"))
	assert.True(t, errors.Is(svc.DeleteComment(context.Background(), "b"), common.ErrCommentNotFound))
}
