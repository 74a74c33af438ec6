package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

const defaultAvatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AdminAccount is the operator login configured outside the database
type AdminAccount struct {
	UserID   string
	Email    string
	Password string
}

// AuthService identity: registration, sessions and passwords
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.LoginResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	AdminLogin(ctx context.Context, password string) (*domain.LoginResponse, error)
	Logout(ctx context.Context, sessionID string)
	UpdatePassword(ctx context.Context, userID string, req *domain.UpdatePasswordRequest) error
}

type authService struct {
	credentials repository.CredentialRepository
	profiles    repository.ProfileRepository
	jwtManager  *jwt.Manager
	cache       ProfileCache
	admin       AdminAccount
}

// NewAuthService creates a new AuthService
func NewAuthService(
	credentials repository.CredentialRepository,
	profiles repository.ProfileRepository,
	jwtManager *jwt.Manager,
	profileCache ProfileCache,
	admin AdminAccount,
) AuthService {
	return &authService{
		credentials: credentials,
		profiles:    profiles,
		jwtManager:  jwtManager,
		cache:       profileCache,
		admin:       admin,
	}
}

// DefaultAvatarURL is the generated avatar for a new account
func DefaultAvatarURL(email string) string {
	return defaultAvatarBase + url.QueryEscape(email)
}

func validatePasswordPair(password, confirm string) error {
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

// Register creates the account and signs it in
func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", common.ErrInvalidInput)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if isReservedEmail(email, s.admin.Email) {
		return nil, common.ErrUserAlreadyExists
	}
	if err := validatePasswordPair(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()
	avatar := DefaultAvatarURL(email)
	cred := &domain.Credential{UserID: userID, Email: email, PasswordHash: string(hash)}
	profile := &domain.UserProfile{ID: userID, Name: name, Email: email, AvatarURL: &avatar}

	if err := s.credentials.Register(ctx, cred, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, err
	}

	return s.issue(ctx, profile)
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	cred, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByID(ctx, cred.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Identity without a profile row still gets a session
		profile = &domain.UserProfile{ID: cred.UserID, Email: cred.Email}
	}

	return s.issue(ctx, profile)
}

// AdminLogin signs in the configured admin account by password
func (s *authService) AdminLogin(ctx context.Context, password string) (*domain.LoginResponse, error) {
	if s.admin.Password == "" || s.admin.Email == "" {
		return nil, common.ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) != 1 {
		return nil, common.ErrInvalidCredentials
	}

	profile := &domain.UserProfile{ID: s.admin.UserID, Name: domain.AdminResponseName, Email: s.admin.Email}
	return s.issue(ctx, profile)
}

// Logout forgets the session's cached profile. Tokens expire on their own.
func (s *authService) Logout(ctx context.Context, sessionID string) {
	s.cache.Clear(ctx, sessionID)
}

func (s *authService) UpdatePassword(ctx context.Context, userID string, req *domain.UpdatePasswordRequest) error {
	if err := validatePasswordPair(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.credentials.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *authService) issue(ctx context.Context, profile *domain.UserProfile) (*domain.LoginResponse, error) {
	token, sessionID, err := s.jwtManager.GenerateSessionToken(profile.ID, profile.Email, profile.Name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, sessionID, profile)

	return &domain.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtManager.ExpiresIn().Seconds()),
		User:        profile,
	}, nil
}

// isReservedEmail reports whether email is the admin address
func isReservedEmail(email, reserved string) bool {
	reserved = strings.TrimSpace(reserved)
	return reserved != "" && strings.EqualFold(strings.TrimSpace(email), reserved)
}

// normalizeEmail parses raw and returns the bare lowercased address, so
// "Name <addr>" input is stored as addr.
func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: invalid email", common.ErrInvalidInput)
	}
	return strings.ToLower(addr.Address), nil
}
