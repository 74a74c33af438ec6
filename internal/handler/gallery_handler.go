package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/ginutil"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// GalleryHandler handles gallery requests
type GalleryHandler struct {
	service service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(service service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// ListGallery handles GET /api/gallery
// @Summary Gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.GalleryItem}
// @Router /gallery [get]
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	items, err := h.service.ListGallery(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.GalleryFetchFailed)
		return
	}
	common.ListResponse(c, items)
}

// AddImage handles POST /api/admin/gallery
// @Summary Upload gallery image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image (max 5MB)"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Success 201 {object} common.APIResponse{data=domain.GalleryItem}
// @Failure 400 {object} common.APIResponse
// @Router /admin/gallery [post]
func (h *GalleryHandler) AddImage(c *gin.Context) {
	file, err := ginutil.FormFile(c, "image")
	if err != nil {
		badRequest(c, i18n.UploadInvalidImage, err)
		return
	}
	defer file.Close()

	item, err := h.service.AddImage(c.Request.Context(), &service.GalleryUpload{
		Title:       ginutil.PostFormTrimmed(c, "title"),
		Description: ginutil.PostFormTrimmed(c, "description"),
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			badRequest(c, i18n.UploadInvalidImage, err)
			return
		}
		respondError(c, err, i18n.GallerySaveFailed)
		return
	}
	common.CreatedResponse(c, item)
}

// DeleteImage handles DELETE /api/admin/gallery/:id
// @Summary Delete gallery image
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Success 204
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		respondError(c, common.ErrNotFound, i18n.ErrNotFound)
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), id); err != nil {
		respondError(c, err, i18n.GalleryDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
