package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/pkg/i18n"
	"github.com/yuriblog/blog-backend/pkg/jwt"
)

// NewsletterAuth gates newsletter sends. It accepts either the shared
// admin token or a session token for the admin account.
//
//	missing or malformed header  -> 401
//	token equals adminToken      -> allowed
//	invalid session token        -> 401
//	valid session, not the admin -> 403 (subject must be the admin login)
func NewsletterAuth(jwtManager *jwt.Manager, adminToken, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := GetLocale(c)

		tokenString, msg, ok := bearerToken(c)
		if !ok {
			common.ErrorResponse(c, http.StatusUnauthorized, i18n.T(locale, msg), nil)
			return
		}

		if adminToken != "" && subtle.ConstantTimeCompare([]byte(tokenString), []byte(adminToken)) == 1 {
			c.Next()
			return
		}

		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			common.ErrorResponse(c, http.StatusUnauthorized, i18n.T(locale, i18n.AuthInvalidToken), err)
			return
		}
		if !isAdminSession(claims, adminEmail) {
			common.ErrorResponse(c, http.StatusForbidden, i18n.T(locale, i18n.AuthAdminOnly), nil)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
