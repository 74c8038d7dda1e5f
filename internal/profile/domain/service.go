package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrProfileExists      = errors.New("profile_exists")
	ErrProfileNotFound    = errors.New("profile_not_found")
	ErrInvalidSession     = errors.New("invalid_session")
)

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// LoginResult carries the raw session token exactly once, for the
// cookie set on the login response.
type LoginResult struct {
	Profile   ProfileView
	RawToken  string
	ExpiresAt time.Time
}

type ProfileView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Admin       bool      `json:"admin"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthContext is the resolved identity for an authenticated request.
type AuthContext struct {
	Session *Session
	Profile *Profile
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*ProfileView, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*AuthContext, error)
	CurrentProfile(ctx context.Context, profileID int64) (*ProfileView, error)
}
