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

// stubGameRepo mimics the guarded roster updates of the real store: add and
// remove only match when the membership and capacity conditions hold.
type stubGameRepo struct {
	games  map[string]*domain.Game
	nextID int
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[string]*domain.Game)}
}

func cloneGame(g *domain.Game) *domain.Game {
	clone := *g
	clone.Participants = append([]domain.Participant{}, g.Participants...)
	return &clone
}

func (r *stubGameRepo) Find(_ context.Context, filter ports.GameFilter) ([]*domain.Game, error) {
	out := []*domain.Game{}
	for _, g := range r.games {
		if filter.Status != "" && string(g.Status) != filter.Status {
			continue
		}
		out = append(out, cloneGame(g))
	}
	return out, nil
}

func (r *stubGameRepo) FindByID(_ context.Context, id string) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return cloneGame(g), nil
}

func (r *stubGameRepo) Insert(_ context.Context, game *domain.Game) (string, error) {
	r.nextID++
	id := string(rune('a' + r.nextID))
	stored := cloneGame(game)
	stored.ID = id
	r.games[id] = stored
	return id, nil
}

func (r *stubGameRepo) Update(_ context.Context, id string, game *domain.Game) error {
	if _, ok := r.games[id]; !ok {
		return domain.ErrGameNotFound
	}
	stored := cloneGame(game)
	stored.ID = id
	stored.Participants = r.games[id].Participants
	stored.CurrentParticipants = r.games[id].CurrentParticipants
	r.games[id] = stored
	return nil
}

func (r *stubGameRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.games[id]; !ok {
		return domain.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

func (r *stubGameRepo) CountByStatus(_ context.Context) (map[domain.GameStatus]int64, error) {
	counts := make(map[domain.GameStatus]int64)
	for _, g := range r.games {
		counts[g.Status]++
	}
	return counts, nil
}

func (r *stubGameRepo) AddParticipant(_ context.Context, gameID string, p domain.Participant) (bool, error) {
	g, ok := r.games[gameID]
	if !ok {
		return false, nil
	}
	if g.HasParticipant(p.UserID) || g.IsFull() {
		return false, nil
	}
	g.Participants = append(g.Participants, p)
	g.CurrentParticipants++
	return true, nil
}

func (r *stubGameRepo) RemoveParticipant(_ context.Context, gameID, userID string) (bool, error) {
	g, ok := r.games[gameID]
	if !ok {
		return false, nil
	}
	if !g.HasParticipant(userID) {
		return false, nil
	}
	kept := g.Participants[:0]
	for _, p := range g.Participants {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	g.Participants = kept
	g.CurrentParticipants--
	return true, nil
}

func seedGame(repo *stubGameRepo, max int) string {
	id, _ := repo.Insert(context.Background(), &domain.Game{
		Title:           "Friday Futsal",
		Location:        "Court 3",
		Status:          domain.StatusUpcoming,
		MaxParticipants: max,
		Participants:    []domain.Participant{},
	})
	return id
}

func TestGameService_Create_AppliesDefaults(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	game, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title:    "Pickup Basketball",
		Location: "Gym A",
		Status:   "someday", // not a known status
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusUpcoming, game.Status)
	assert.Equal(t, "gamepad", game.Icon)
	assert.Equal(t, 20, game.MaxParticipants)
	assert.NotNil(t, game.Participants)
	assert.Empty(t, game.Participants)
	assert.NotEmpty(t, game.ID)
	assert.False(t, game.CreatedAt.IsZero())
}

func TestGameService_Join_AddsToRosterOnce(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	id := seedGame(repo, 5)
	claims := domain.Claims{UserID: "u1", Name: "Alice", Email: "alice@example.com"}

	require.NoError(t, svc.Join(context.Background(), id, claims))

	game, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, game.Participants, 1)
	assert.Equal(t, 1, game.CurrentParticipants)
	assert.Equal(t, "u1", game.Participants[0].UserID)
	assert.Equal(t, "Alice", game.Participants[0].UserName)
	assert.False(t, game.Participants[0].JoinedAt.IsZero())

	err = svc.Join(context.Background(), id, claims)
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)

	game, _ = svc.Get(context.Background(), id)
	assert.Len(t, game.Participants, 1)
	assert.Equal(t, 1, game.CurrentParticipants)
}

func TestGameService_Join_FallsBackToEmailName(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	id := seedGame(repo, 5)

	require.NoError(t, svc.Join(context.Background(), id, domain.Claims{UserID: "u2", Email: "bob@example.com"}))

	game, _ := svc.Get(context.Background(), id)
	require.Len(t, game.Participants, 1)
	assert.Equal(t, "bob@example.com", game.Participants[0].UserName)
}

func TestGameService_Join_FullGame(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	id := seedGame(repo, 2)

	require.NoError(t, svc.Join(context.Background(), id, domain.Claims{UserID: "u1"}))
	require.NoError(t, svc.Join(context.Background(), id, domain.Claims{UserID: "u2"}))

	err := svc.Join(context.Background(), id, domain.Claims{UserID: "u3"})
	assert.ErrorIs(t, err, domain.ErrGameFull)

	game, _ := svc.Get(context.Background(), id)
	assert.Equal(t, 2, game.CurrentParticipants)
	assert.Len(t, game.Participants, 2)
}

func TestGameService_Join_UnknownGame(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	err := svc.Join(context.Background(), "missing", domain.Claims{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

// staleReadGameRepo serves a captured snapshot for the first FindByID so the
// service's pre-checks run against state that no longer holds.
type staleReadGameRepo struct {
	*stubGameRepo
	stale *domain.Game
}

func (r *staleReadGameRepo) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	if r.stale != nil {
		g := r.stale
		r.stale = nil
		return g, nil
	}
	return r.stubGameRepo.FindByID(ctx, id)
}

func TestGameService_Join_LostRaceReportsFull(t *testing.T) {
	inner := newStubGameRepo()
	id := seedGame(inner, 1)
	stale, err := inner.FindByID(context.Background(), id)
	require.NoError(t, err)

	// Occupy the single slot after the snapshot: the pre-checks pass on the
	// stale read, the guarded update misses, and the re-read classifies it.
	_, err = inner.AddParticipant(context.Background(), id, domain.Participant{UserID: "racer"})
	require.NoError(t, err)

	svc := NewGameService(&staleReadGameRepo{stubGameRepo: inner, stale: stale}, zerolog.Nop())
	err = svc.Join(context.Background(), id, domain.Claims{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrGameFull)

	game, _ := inner.FindByID(context.Background(), id)
	assert.Equal(t, 1, game.CurrentParticipants)
}

func TestGameService_Join_LostRaceReportsAlreadyJoined(t *testing.T) {
	inner := newStubGameRepo()
	id := seedGame(inner, 5)
	stale, err := inner.FindByID(context.Background(), id)
	require.NoError(t, err)

	// The same user joined between the snapshot and the guarded update.
	_, err = inner.AddParticipant(context.Background(), id, domain.Participant{UserID: "u1"})
	require.NoError(t, err)

	svc := NewGameService(&staleReadGameRepo{stubGameRepo: inner, stale: stale}, zerolog.Nop())
	err = svc.Join(context.Background(), id, domain.Claims{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)

	game, _ := inner.FindByID(context.Background(), id)
	assert.Equal(t, 1, game.CurrentParticipants)
}

func TestGameService_Leave_RemovesParticipant(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	id := seedGame(repo, 5)
	claims := domain.Claims{UserID: "u1", Name: "Alice"}

	require.NoError(t, svc.Join(context.Background(), id, claims))
	require.NoError(t, svc.Leave(context.Background(), id, claims))

	game, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, game.Participants)
	assert.Equal(t, 0, game.CurrentParticipants)
}

func TestGameService_Leave_NotParticipant(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	id := seedGame(repo, 5)

	err := svc.Leave(context.Background(), id, domain.Claims{UserID: "outsider"})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	game, _ := svc.Get(context.Background(), id)
	assert.Equal(t, 0, game.CurrentParticipants)
}

func TestGameService_Leave_UnknownGame(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	err := svc.Leave(context.Background(), "missing", domain.Claims{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestGameService_Stats(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	for _, status := range []domain.GameStatus{domain.StatusUpcoming, domain.StatusUpcoming, domain.StatusOngoing, domain.StatusPast} {
		_, err := repo.Insert(context.Background(), &domain.Game{Title: "g", Status: status, MaxParticipants: 10})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Upcoming)
	assert.Equal(t, int64(1), stats.Ongoing)
	assert.Equal(t, int64(1), stats.Past)
	assert.Equal(t, int64(4), stats.Total)
}

func TestGameService_ListByStatus(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	_, _ = repo.Insert(context.Background(), &domain.Game{Title: "a", Status: domain.StatusUpcoming})
	_, _ = repo.Insert(context.Background(), &domain.Game{Title: "b", Status: domain.StatusPast})

	games, err := svc.ListByStatus(context.Background(), "past")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "b", games[0].Title)
}
