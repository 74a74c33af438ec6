package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/ginutil"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// PostHandler handles blog post requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts handles GET /api/posts and GET /api/admin/posts
// @Summary List posts
// @Description Newest date first
// @Tags posts
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.Post}
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.PostFetchFailed)
		return
	}
	common.ListResponse(c, posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse{data=domain.Post}
// @Failure 404 {object} common.APIResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, i18n.PostFetchFailed)
		return
	}
	common.SuccessResponse(c, post, nil)
}

// CreatePost handles POST /api/admin/posts
// @Summary Create post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.PostRequest true "Post"
// @Success 201 {object} common.APIResponse{data=domain.Post}
// @Failure 400 {object} common.APIResponse
// @Router /admin/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req domain.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.PostRequired, err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.PostSaveFailed)
		return
	}
	common.CreatedResponse(c, post)
}

// UpdatePost handles PUT /api/admin/posts/:id
// @Summary Update post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body domain.PostRequest true "Post"
// @Success 200 {object} common.APIResponse{data=domain.Post}
// @Router /admin/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req domain.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.PostRequired, err)
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, i18n.PostSaveFailed)
		return
	}
	common.SuccessResponse(c, post, nil)
}

// DeletePost handles DELETE /api/admin/posts/:id
// @Summary Delete post
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err, i18n.PostDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

func postID(c *gin.Context) (int64, bool) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil || id <= 0 {
		respondError(c, common.ErrPostNotFound, i18n.PostNotFound)
		return 0, false
	}
	return id, true
}
