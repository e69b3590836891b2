package ports

import (
	"context"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// GameFilter carries the optional query parameters for listing games.
type GameFilter struct {
	Status   string // exact match on status
	Location string // exact match on location
	Search   string // case-insensitive partial match on title or location
}

// GameRepository defines persistence for games and their rosters.
type GameRepository interface {
	Find(ctx context.Context, filter GameFilter) ([]*domain.Game, error)
	FindByID(ctx context.Context, id string) (*domain.Game, error)
	Insert(ctx context.Context, game *domain.Game) (string, error)
	Update(ctx context.Context, id string, game *domain.Game) error
	Delete(ctx context.Context, id string) error
	// CountByStatus groups games by status.
	CountByStatus(ctx context.Context) (map[domain.GameStatus]int64, error)

	// AddParticipant appends p to the roster and increments the counter in one
	// conditional document update. The update only matches when p.UserID is
	// not already on the roster and the roster is below capacity; matched
	// reports whether the document was changed.
	AddParticipant(ctx context.Context, gameID string, p domain.Participant) (matched bool, err error)
	// RemoveParticipant pulls userID from the roster and decrements the
	// counter, filtered on membership so a non-member leave changes nothing.
	RemoveParticipant(ctx context.Context, gameID, userID string) (matched bool, err error)
}
