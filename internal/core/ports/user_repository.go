package ports

import (
	"context"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AppendEntry atomically appends one transaction to the user's income or
	// outcome list, creating the list when it does not exist yet. Existing
	// entries and their order are preserved.
	AppendEntry(ctx context.Context, userID string, kind domain.EntryKind, entry domain.Transaction) error
	ListAll(ctx context.Context) ([]domain.User, error)
	DeleteAll(ctx context.Context) error
}
