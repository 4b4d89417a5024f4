// Package auth implements the pluggable AuthProvider capability: a
// self-hosted session-table provider and an external identity-provider
// variant. Exactly one is active, selected at configuration time.
package auth

import (
	"context"
	"errors"
	"os"

	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("email and password are required")
	// ErrNotSupported is returned by the external provider for flows the
	// identity provider owns (register/login/logout happen there).
	ErrNotSupported = errors.New("operation is handled by the identity provider")
)

// Credentials is the register-time input.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// Provider issues and validates bearer tokens. Authenticate returns the
// local user ID the token belongs to.
type Provider interface {
	Register(ctx context.Context, creds Credentials) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (uint, error)
}

// FromEnv selects the active provider: AUTH_PROVIDER=external validates
// IdP-issued JWTs, anything else (default "local") runs the self-hosted
// session table.
func FromEnv(db *gorm.DB) Provider {
	if os.Getenv("AUTH_PROVIDER") == "external" {
		return NewExternalProvider(db, []byte(os.Getenv("JWT_SECRET")))
	}
	return &LocalProvider{DB: db}
}
