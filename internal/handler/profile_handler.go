package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/ginutil"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// ProfileHandler serves the signed-in user's profile
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe handles GET /api/me
// @Summary Current profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), middleware.GetSessionID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, i18n.ProfileFetchFailed)
		return
	}
	common.SuccessResponse(c, profile, nil)
}

// UpdateMe handles PUT /api/me
// @Summary Update name and email
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UpdateProfileRequest true "Profile"
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Failure 409 {object} common.APIResponse
// @Router /me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.ProfileRequired, err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), middleware.GetSessionID(c), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err, i18n.ProfileUpdateFailed)
		return
	}
	common.SuccessResponse(c, profile, nil)
}

// UploadAvatar handles POST /api/me/avatar
// @Summary Replace avatar
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image (max 5MB)"
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Failure 400 {object} common.APIResponse
// @Router /me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, err := ginutil.FormFile(c, "image")
	if err != nil {
		badRequest(c, i18n.UploadInvalidImage, err)
		return
	}
	defer file.Close()

	profile, err := h.service.UpdateAvatar(c.Request.Context(), middleware.GetSessionID(c), middleware.GetUserID(c),
		file.Filename, file.ContentType, file.Size, file)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			badRequest(c, i18n.UploadInvalidImage, err)
			return
		}
		respondError(c, err, i18n.UploadFailed)
		return
	}
	common.SuccessResponse(c, profile, nil)
}
