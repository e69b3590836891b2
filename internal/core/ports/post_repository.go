package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// PostRepository defines persistence for posts.
type PostRepository interface {
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Insert(ctx context.Context, post *domain.Post) (string, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}
