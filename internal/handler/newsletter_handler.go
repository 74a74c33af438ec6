package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/ginutil"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// NewsletterHandler handles subscriptions and newsletter sends
type NewsletterHandler struct {
	subscribers service.SubscriberService
	newsletter  service.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(subscribers service.SubscriberService, newsletter service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{subscribers: subscribers, newsletter: newsletter}
}

// Subscribe handles POST /api/newsletter/subscribe
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body domain.SubscribeRequest true "Email"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.NewsletterInvalidEmail, err)
		return
	}

	sub, err := h.subscribers.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			badRequest(c, i18n.NewsletterInvalidEmail, err)
			return
		}
		respondError(c, err, i18n.NewsletterSubFailed)
		return
	}

	common.CreatedResponse(c, gin.H{
		"message": middleware.T(c, i18n.NewsletterSubscribed),
		"email":   sub.Email,
	})
}

// ListSubscribers handles GET /api/admin/subscribers
// @Summary List subscribers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.Subscriber}
// @Router /admin/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.subscribers.ListSubscribers(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.SubscriberFetchFailed)
		return
	}
	common.ListResponse(c, subs)
}

// DeleteSubscriber handles DELETE /api/admin/subscribers/:id
// @Summary Remove subscriber
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Subscriber ID"
// @Success 204
// @Router /admin/subscribers/{id} [delete]
func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		respondError(c, common.ErrNotFound, i18n.ErrNotFound)
		return
	}

	if err := h.subscribers.DeleteSubscriber(c.Request.Context(), id); err != nil {
		respondError(c, err, i18n.SubscriberDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// Send handles POST /api/admin/newsletter/send
// @Summary Email a post announcement to every subscriber
// @Description Accepts the shared admin token or an admin session token.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.Announcement true "Announcement"
// @Success 200 {object} domain.NewsletterReport
// @Failure 400 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
// @Failure 500 {object} common.APIResponse
// @Router /admin/newsletter/send [post]
func (h *NewsletterHandler) Send(c *gin.Context) {
	var req domain.Announcement
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.ErrInvalidJSON, err)
		return
	}

	report, err := h.newsletter.Send(c.Request.Context(), &req)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrInvalidInput):
		badRequest(c, i18n.NewsletterFillAll, err)
		return
	case errors.Is(err, common.ErrNotConfigured):
		common.ErrorResponse(c, http.StatusInternalServerError, middleware.T(c, i18n.NewsletterNotConfigured), err)
		return
	default:
		respondError(c, err, i18n.NewsletterSendFailed)
		return
	}

	// the admin console reads the report at the top level
	c.JSON(http.StatusOK, report)
}
