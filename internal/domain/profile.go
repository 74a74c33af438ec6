package domain

import "time"

// UserProfile is the public identity of a registered user.
// ID is shared with the session subject.
type UserProfile struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);index" json:"email"`
	AvatarURL *string   `gorm:"column:avatar_url;type:varchar(500)" json:"avatar_url,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string { return "profiles" }

// AdminUserID is the session subject of the configured admin account.
// Registered users get uuid subjects, so it never collides.
const AdminUserID = "admin"

// Credential is the identity store row; never serialized
type Credential struct {
	UserID       string    `gorm:"column:user_id;primaryKey;type:varchar(36)" json:"-"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"-"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Credential) TableName() string { return "credentials" }

// RegisterRequest registration payload
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest admin console login payload
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest profile edit payload
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest password change payload
type UpdatePasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginResponse is returned by register and login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"` // seconds
	User        *UserProfile `json:"user"`
}
