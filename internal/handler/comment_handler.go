package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	service  service.CommentService
	profiles service.ProfileService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService, profiles service.ProfileService) *CommentHandler {
	return &CommentHandler{service: service, profiles: profiles}
}

// ListComments handles GET /api/posts/:id/comments
// @Summary Comment threads of a post
// @Description Top-level comments newest first, replies oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse{data=[]domain.CommentThread}
// @Failure 404 {object} common.APIResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	threads, err := h.service.ListThreads(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, i18n.PostFetchFailed)
		return
	}
	common.ListResponse(c, threads)
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Post a comment or reply
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body domain.CreateCommentRequest true "Comment"
// @Success 201 {object} common.APIResponse{data=domain.Comment}
// @Failure 400 {object} common.APIResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.CommentEmpty, err)
		return
	}

	author, err := h.profiles.GetProfile(c.Request.Context(), middleware.GetSessionID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, i18n.ProfileFetchFailed)
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), id, author, &req)
	if err != nil {
		respondError(c, err, i18n.CommentPostFailed)
		return
	}
	common.CreatedResponse(c, comment)
}

// MyComments handles GET /api/me/comments
// @Summary Comments written by the current user
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.Comment}
// @Router /me/comments [get]
func (h *CommentHandler) MyComments(c *gin.Context) {
	comments, err := h.service.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, i18n.PostFetchFailed)
		return
	}
	common.ListResponse(c, comments)
}

// AdminComments handles GET /api/admin/comments
// @Summary All comment threads with post titles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.AdminComments}
// @Router /admin/comments [get]
func (h *CommentHandler) AdminComments(c *gin.Context) {
	result, err := h.service.AdminComments(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.PostFetchFailed)
		return
	}
	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result.Threads))})
}

// Reply handles POST /api/admin/comments/:id/reply
// @Summary Reply as admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body domain.ReplyRequest true "Reply"
// @Success 201 {object} common.APIResponse{data=domain.Comment}
// @Router /admin/comments/{id}/reply [post]
func (h *CommentHandler) Reply(c *gin.Context) {
	var req domain.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.CommentEmpty, err)
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err, i18n.CommentPostFailed)
		return
	}
	common.CreatedResponse(c, reply)
}

// DeleteComment handles DELETE /api/admin/comments/:id
// @Summary Delete comment
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 204
// @Router /admin/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.service.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, i18n.CommentDelFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
