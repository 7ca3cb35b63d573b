package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-api/internal/core/domain"
	"github.com/mywallet/wallet-api/internal/core/ports"
	"github.com/mywallet/wallet-api/internal/core/validation"
)

// AuthService implements registration and login.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a new user with empty income and outcome lists.
//
// Uniqueness is checked before format validation: a taken name (then a taken
// email) is reported even when the rest of the input is malformed. The unique
// indexes on the users collection close the remaining check-then-insert race;
// a duplicate-key error at insert time maps back to the same sentinels.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.users.FindByName(ctx, name); err == nil {
		return domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if err := validation.Signup(name, email, password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("name", name).Msg("user registered")
	return nil
}

// Login verifies the credentials and issues a fresh opaque session token.
//
// The user lookup runs before format validation, so an unknown email is
// reported as not-found even when it is malformed. A failed password
// comparison creates no session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := validation.Login(email, password); err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:    uuid.NewString(),
		UserID:   user.ID,
		UserName: user.Name,
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("session created")
	return session.Token, nil
}
