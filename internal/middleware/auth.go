package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/pkg/i18n"
	"github.com/yuriblog/blog-backend/pkg/jwt"
)

const (
	ctxClaims    = "claims"
	ctxUserID    = "userID"
	ctxSessionID = "sessionID"
	ctxEmail     = "email"
)

// bearerToken extracts the token from "Authorization: Bearer <token>".
// On failure it returns the message key to report.
func bearerToken(c *gin.Context) (string, i18n.Key, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", i18n.AuthMissingHeader, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", i18n.AuthInvalidToken, false
	}
	return strings.TrimSpace(parts[1]), "", true
}

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := GetLocale(c)

		// 1. Extract bearer token
		tokenString, msg, ok := bearerToken(c)
		if !ok {
			common.ErrorResponse(c, http.StatusUnauthorized, i18n.T(locale, msg), nil)
			return
		}

		// 2. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, i18n.T(locale, i18n.AuthTokenExpired), err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, i18n.T(locale, i18n.AuthInvalidToken), err)
			}
			return
		}

		// 3. Store session in context
		setClaims(c, claims)
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(ctxClaims, claims)
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxSessionID, claims.SessionID)
	c.Set(ctxEmail, claims.Email)
}

// GetClaims returns the verified session claims, or nil
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, exists := c.Get(ctxClaims); exists {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetSessionID extracts the session id from context
func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// GetEmail extracts the session email from context
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
