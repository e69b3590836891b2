package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// UserService implements profile reads and owner-scoped mutations.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial profile update: name is trimmed, email is
// re-normalized, a new password is re-hashed before it reaches storage.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) error {
	update := ports.UserUpdate{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		update.Name = &name
	}
	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		update.Email = &email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
