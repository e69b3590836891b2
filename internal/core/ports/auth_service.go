package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// RegisterInput carries the fields submitted at sign-up. The handler has
// already validated presence and password length; the service normalizes and
// persists.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements credential issuance: registration and login.
type AuthService interface {
	// Register creates a user and returns the new identifier.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies credentials and returns a signed session token together
	// with the public user projection. Unknown email and wrong password both
	// resolve to domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles login attempts per account key.
type LoginLimiter interface {
	// Allow records an attempt for key and reports whether it is within the
	// window budget.
	Allow(ctx context.Context, key string) (bool, error)
}
