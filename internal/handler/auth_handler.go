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

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Account"
// @Success 201 {object} common.APIResponse{data=domain.LoginResponse}
// @Failure 400 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.ErrBadRequest, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.AuthRegisterFailed)
		return
	}
	common.CreatedResponse(c, resp)
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} common.APIResponse{data=domain.LoginResponse}
// @Failure 401 {object} common.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.ErrBadRequest, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.AuthLoginFailed)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// AdminLogin handles POST /api/admin/login
// @Summary Sign in as the blog admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.AdminLoginRequest true "Password"
// @Success 200 {object} common.APIResponse{data=domain.LoginResponse}
// @Failure 401 {object} common.APIResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req domain.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.ErrBadRequest, err)
		return
	}

	resp, err := h.service.AdminLogin(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err, i18n.AuthLoginFailed)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), middleware.GetSessionID(c))
	c.Status(http.StatusNoContent)
}

// UpdatePassword handles PUT /api/me/password
// @Summary Change password
// @Tags profile
// @Accept json
// @Security BearerAuth
// @Param request body domain.UpdatePasswordRequest true "New password"
// @Success 204
// @Failure 400 {object} common.APIResponse
// @Router /me/password [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req domain.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, i18n.AuthPasswordRules, err)
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), middleware.GetUserID(c), &req); err != nil {
		status, key := statusFor(err, i18n.ProfileUpdateFailed)
		if status == http.StatusBadRequest {
			key = i18n.AuthPasswordRules
		}
		common.ErrorResponse(c, status, middleware.T(c, key), err)
		return
	}
	c.Status(http.StatusNoContent)
}
