package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// statusFor maps service errors to an HTTP status and the message to show.
// fallback is used for anything unexpected.
func statusFor(err error, fallback i18n.Key) (int, i18n.Key) {
	switch {
	case errors.Is(err, common.ErrPostNotFound):
		return http.StatusNotFound, i18n.PostNotFound
	case errors.Is(err, common.ErrCommentNotFound):
		return http.StatusNotFound, i18n.CommentNotFound
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound, i18n.ErrNotFound
	case errors.Is(err, common.ErrInvalidParent):
		return http.StatusBadRequest, i18n.CommentBadParent
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest, i18n.ErrBadRequest
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.AuthLoginFailed
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, i18n.ErrUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, i18n.ErrForbidden
	case errors.Is(err, common.ErrAlreadySubscribed):
		return http.StatusConflict, i18n.NewsletterAlready
	case errors.Is(err, common.ErrUserAlreadyExists):
		return http.StatusConflict, i18n.AuthDuplicateEmail
	case errors.Is(err, common.ErrNotConfigured):
		return http.StatusInternalServerError, i18n.ErrNotConfigured
	default:
		return http.StatusInternalServerError, fallback
	}
}

// respondError writes the localized error response for err
func respondError(c *gin.Context, err error, fallback i18n.Key) {
	status, key := statusFor(err, fallback)
	common.ErrorResponse(c, status, middleware.T(c, key), err)
}

// badRequest reports a body that failed binding
func badRequest(c *gin.Context, key i18n.Key, err error) {
	common.ErrorResponse(c, http.StatusBadRequest, middleware.T(c, key), err)
}
