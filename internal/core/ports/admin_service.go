package ports

import (
	"context"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// UserSummary is the administrative view of a user. The password hash is
// deliberately absent: the debug surface must never expose credentials.
type UserSummary struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Incomes  []domain.Transaction `json:"incomes"`
	Outcomes []domain.Transaction `json:"outcomes"`
}

// AdminService backs the legacy debug endpoints. It is only reachable when
// the debug surface is explicitly enabled in configuration.
type AdminService interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	// PurgeUsers deletes every user document and returns the remaining list.
	PurgeUsers(ctx context.Context) ([]UserSummary, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	// ComparePassword reports whether the raw password matches the stored
	// hash for the given email.
	ComparePassword(ctx context.Context, email, password string) (bool, error)
}
