package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/pkg/i18n"
	"github.com/yuriblog/blog-backend/pkg/jwt"
)

// RequireAdmin checks that the verified session belongs to the admin account.
// Must run after JWTAuth.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminSession(GetClaims(c), adminEmail) {
			common.ErrorResponse(c, http.StatusForbidden, i18n.T(GetLocale(c), i18n.AuthAdminOnly), nil)
			return
		}
		c.Next()
	}
}

// isAdminSession trusts the subject, which only admin login issues.
// The email must still match so a changed admin.email revokes old sessions.
func isAdminSession(claims *jwt.Claims, adminEmail string) bool {
	if claims == nil || claims.UserID != domain.AdminUserID {
		return false
	}
	return adminEmail != "" && strings.EqualFold(strings.TrimSpace(claims.Email), strings.TrimSpace(adminEmail))
}
