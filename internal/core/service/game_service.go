package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

const (
	defaultMaxParticipants = 20
	defaultIcon            = "gamepad"
)

// GameService implements game CRUD and roster membership.
type GameService struct {
	repo   ports.GameRepository
	logger zerolog.Logger
}

func NewGameService(repo ports.GameRepository, logger zerolog.Logger) *GameService {
	return &GameService{repo: repo, logger: logger}
}

func (s *GameService) List(ctx context.Context, filter ports.GameFilter) ([]*domain.Game, error) {
	return s.repo.Find(ctx, filter)
}

func (s *GameService) ListByStatus(ctx context.Context, status string) ([]*domain.Game, error) {
	return s.repo.Find(ctx, ports.GameFilter{Status: status})
}

// Stats returns per-status game counts plus the total.
func (s *GameService) Stats(ctx context.Context) (*domain.StatsOverview, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	overview := &domain.StatsOverview{
		Ongoing:  counts[domain.StatusOngoing],
		Upcoming: counts[domain.StatusUpcoming],
		Past:     counts[domain.StatusPast],
	}
	for _, n := range counts {
		overview.Total += n
	}
	return overview, nil
}

func (s *GameService) Get(ctx context.Context, id string) (*domain.Game, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GameService) Create(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	status := domain.GameStatus(input.Status)
	if !domain.ValidStatus(status) {
		status = domain.StatusUpcoming
	}
	icon := input.Icon
	if icon == "" {
		icon = defaultIcon
	}
	maxParticipants := input.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = defaultMaxParticipants
	}

	now := time.Now().UTC()
	game := &domain.Game{
		Title:           input.Title,
		Location:        input.Location,
		Date:            input.Date,
		Fee:             input.Fee,
		Status:          status,
		Icon:            icon,
		Description:     input.Description,
		MaxParticipants: maxParticipants,
		Participants:    []domain.Participant{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Insert(ctx, game)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create game")
		return nil, err
	}
	game.ID = id

	s.logger.Info().Str("game_id", id).Str("title", game.Title).Msg("game created")
	return game, nil
}

func (s *GameService) Update(ctx context.Context, id string, input ports.UpdateGameInput) error {
	game := &domain.Game{
		Title:           input.Title,
		Location:        input.Location,
		Date:            input.Date,
		Fee:             input.Fee,
		Status:          domain.GameStatus(input.Status),
		Icon:            input.Icon,
		Description:     input.Description,
		MaxParticipants: input.MaxParticipants,
		UpdatedAt:       time.Now().UTC(),
	}
	return s.repo.Update(ctx, id, game)
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("game_id", id).Msg("game deleted")
	return nil
}

// Join adds the caller to the roster. The pre-checks produce the precise
// error; the repository update re-asserts membership and capacity in its
// filter, so two near-simultaneous joins cannot push the roster past its
// limit or duplicate an entry.
func (s *GameService) Join(ctx context.Context, gameID string, claims domain.Claims) error {
	game, err := s.repo.FindByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game.HasParticipant(claims.UserID) {
		return domain.ErrAlreadyJoined
	}
	if game.IsFull() {
		return domain.ErrGameFull
	}

	participant := domain.Participant{
		UserID:   claims.UserID,
		UserName: participantName(claims),
		JoinedAt: time.Now().UTC(),
	}

	matched, err := s.repo.AddParticipant(ctx, gameID, participant)
	if err != nil {
		return err
	}
	if !matched {
		// The pre-checks passed but the guarded update did not: the roster
		// changed underneath us. Re-read to report the right reason.
		return s.classifyJoinConflict(ctx, gameID, claims.UserID)
	}

	s.logger.Info().Str("game_id", gameID).Str("user_id", claims.UserID).Msg("user joined game")
	return nil
}

// Leave removes the caller from the roster. The update is filtered on
// membership: leaving a game never joined changes nothing and never drives
// the counter negative.
func (s *GameService) Leave(ctx context.Context, gameID string, claims domain.Claims) error {
	matched, err := s.repo.RemoveParticipant(ctx, gameID, claims.UserID)
	if err != nil {
		return err
	}
	if !matched {
		if _, err := s.repo.FindByID(ctx, gameID); err != nil {
			return err
		}
		return domain.ErrNotParticipant
	}

	s.logger.Info().Str("game_id", gameID).Str("user_id", claims.UserID).Msg("user left game")
	return nil
}

func (s *GameService) classifyJoinConflict(ctx context.Context, gameID, userID string) error {
	game, err := s.repo.FindByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game.HasParticipant(userID) {
		return domain.ErrAlreadyJoined
	}
	return domain.ErrGameFull
}

func participantName(claims domain.Claims) string {
	if claims.Name != "" {
		return claims.Name
	}
	return claims.Email
}
