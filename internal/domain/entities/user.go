package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuthProvider represents how a user account was created
type AuthProvider string

const (
	AuthProviderPassword AuthProvider = "password"
	AuthProviderEmail    AuthProvider = "email"
	AuthProviderOAuth    AuthProvider = "oauth"
	AuthProviderSSO      AuthProvider = "sso"
)

// User represents a registered account that owns business profiles
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Name         null.String  `json:"name,omitempty"`
	AuthProvider AuthProvider `json:"authProvider"`
	PasswordHash string       `json:"-"`
	IsActive     bool         `json:"isActive"`
	LastLogin    null.Time    `json:"lastLogin,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name,omitempty"`
	Password     string `json:"password" binding:"required,min=8"`
	AuthProvider string `json:"authProvider,omitempty"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	User     *User            `json:"user"`
	Business *BusinessProfile `json:"business,omitempty"`
}
