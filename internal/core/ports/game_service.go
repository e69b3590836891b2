package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// CreateGameInput carries the fields accepted when creating a game.
// Zero values fall back to the source defaults (status upcoming, icon
// gamepad, 20 max participants).
type CreateGameInput struct {
	Title           string
	Location        string
	Date            string
	Fee             float64
	Status          string
	Icon            string
	Description     string
	MaxParticipants int
}

// UpdateGameInput is a full-document game update.
type UpdateGameInput struct {
	Title           string
	Location        string
	Date            string
	Fee             float64
	Status          string
	Icon            string
	Description     string
	MaxParticipants int
}

// GameService defines use-case operations for games.
type GameService interface {
	List(ctx context.Context, filter GameFilter) ([]*domain.Game, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Game, error)
	Stats(ctx context.Context) (*domain.StatsOverview, error)
	Get(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, input CreateGameInput) (*domain.Game, error)
	Update(ctx context.Context, id string, input UpdateGameInput) error
	Delete(ctx context.Context, id string) error
	// Join adds the calling user to the roster. Fails with
	// domain.ErrAlreadyJoined or domain.ErrGameFull without changing state.
	Join(ctx context.Context, gameID string, claims domain.Claims) error
	// Leave removes the calling user from the roster. A leave by a non-member
	// fails with domain.ErrNotParticipant and changes nothing.
	Leave(ctx context.Context, gameID string, claims domain.Claims) error
}
