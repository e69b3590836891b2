package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// CreatePostInput carries the fields accepted when creating a post. The
// author is the authenticated caller.
type CreatePostInput struct {
	Title   string
	Content string
	Author  domain.Claims
}

// PostService defines use-case operations for posts.
type PostService interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}
