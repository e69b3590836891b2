package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// UserUpdate carries a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	// Create inserts a user and returns the assigned identifier.
	// A duplicate email resolves to domain.ErrEmailExists.
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error
}
