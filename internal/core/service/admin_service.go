package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-api/internal/core/domain"
	"github.com/mywallet/wallet-api/internal/core/ports"
)

// AdminService backs the legacy debug endpoints. Password hashes never leave
// this service; user listings are converted to redacted summaries.
type AdminService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	logger   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, sessions ports.SessionRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, sessions: sessions, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *AdminService) PurgeUsers(ctx context.Context) ([]ports.UserSummary, error) {
	if err := s.users.DeleteAll(ctx); err != nil {
		return nil, err
	}
	s.logger.Warn().Msg("all users deleted")
	return s.ListUsers(ctx)
}

func (s *AdminService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	return sessions, nil
}

func (s *AdminService) ComparePassword(ctx context.Context, email, password string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

func summarize(users []domain.User) []ports.UserSummary {
	out := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summary := ports.UserSummary{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Incomes:  u.Incomes,
			Outcomes: u.Outcomes,
		}
		if summary.Incomes == nil {
			summary.Incomes = []domain.Transaction{}
		}
		if summary.Outcomes == nil {
			summary.Outcomes = []domain.Transaction{}
		}
		out = append(out, summary)
	}
	return out
}
