package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) List(context.Context) ([]*domain.Post, error) {
	out := []*domain.Post{}
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Insert(_ context.Context, post *domain.Post) (string, error) {
	r.nextID++
	id := string(rune('a' + r.nextID))
	clone := *post
	clone.ID = id
	r.posts[id] = &clone
	return id, nil
}

func (r *stubPostRepo) Update(_ context.Context, id, title, content string) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Title = title
	p.Content = content
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestPostService_Create_AuthorFromClaims(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:   "Court closed Friday",
		Content: "Maintenance work.",
		Author:  domain.Claims{UserID: "u1", Name: "Alice", Email: "alice@example.com"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, "Alice", post.AuthorName)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestPostService_Update(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Before", Content: "old", Author: domain.Claims{UserID: "u1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), post.ID, "After", "new"))

	got, err := svc.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "new", got.Content)
	assert.Equal(t, "u1", got.AuthorID)
}

func TestPostService_Get_Unknown(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), post.ID))
	err = svc.Delete(context.Background(), post.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
