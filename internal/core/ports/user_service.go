package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// UpdateUserInput carries an authenticated partial profile update. Nil fields
// are left untouched; Password is re-hashed by the service.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UserService defines profile operations on the credential store. Ownership
// enforcement happens in the middleware layer; these operations trust their
// caller.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
