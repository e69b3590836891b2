package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamesgrid/arise-api/internal/auth"
	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// AuthService implements registration and login over the credential store.
type AuthService struct {
	repo       ports.UserRepository
	tokens     *auth.TokenService
	limiter    ports.LoginLimiter
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenService, limiter ports.LoginLimiter, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, bcryptCost: bcryptCost, logger: logger}
}

// Register hashes the password and persists a new user. The email is stored
// lower-cased and trimmed; uniqueness is checked before insert and backed by
// a unique index, so a concurrent duplicate still resolves to ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	email := NormalizeEmail(input.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrEmailExists
	} else if err != domain.ErrUserNotFound {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		JoinDate:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", id).Msg("user registered")
	return id, nil
}

// Login walks the credential check in order: rate limit, lookup, password
// compare, token issuance. A missing account and a wrong password both fail
// with ErrInvalidCredentials so the response does not leak which part was
// wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// A limiter outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	// A malformed stored hash fails the comparison like any wrong password.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user, nil
}

// NormalizeEmail lower-cases and trims an email for use as the login key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
