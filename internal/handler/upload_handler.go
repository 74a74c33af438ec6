package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/ginutil"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// UploadHandler stores post images in the object store
type UploadHandler struct {
	media *service.MediaService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(media *service.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

// UploadPostImage handles POST /api/admin/uploads
// @Summary Upload a post image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image (max 5MB)"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Router /admin/uploads [post]
func (h *UploadHandler) UploadPostImage(c *gin.Context) {
	file, err := ginutil.FormFile(c, "image")
	if err != nil {
		badRequest(c, i18n.UploadInvalidImage, err)
		return
	}
	defer file.Close()

	result, err := h.media.UploadImage(c.Request.Context(), service.PrefixPostImages, file.Filename, file.ContentType, file.Size, file)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			badRequest(c, i18n.UploadInvalidImage, err)
			return
		}
		respondError(c, err, i18n.UploadFailed)
		return
	}
	common.CreatedResponse(c, result)
}
