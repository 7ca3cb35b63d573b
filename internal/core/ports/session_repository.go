package ports

import (
	"context"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// SessionRepository defines persistence operations for session records.
type SessionRepository interface {
	Insert(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	ListAll(ctx context.Context) ([]domain.Session, error)
}
