package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// PostService implements post CRUD. The author is always taken from the
// caller's session claims.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   input.Author.UserID,
		AuthorName: input.Author.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}
	post.ID = id

	s.logger.Info().Str("post_id", id).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id, title, content string) error {
	return s.repo.Update(ctx, id, title, content)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}
