package ports

import (
	"context"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// RecordEntryInput carries the data for one income or outcome append.
type RecordEntryInput struct {
	Token       string
	Amount      int64
	Description string
}

// BalanceView is the read-only projection returned to the owner of a token.
// Credentials (email, password hash) are stripped before it leaves the service.
type BalanceView struct {
	Name     string               `json:"name"`
	Incomes  []domain.Transaction `json:"incomes"`
	Outcomes []domain.Transaction `json:"outcomes"`
}

// LedgerService defines use-case operations on a user's transaction lists.
type LedgerService interface {
	RecordIncome(ctx context.Context, input RecordEntryInput) error
	RecordOutcome(ctx context.Context, input RecordEntryInput) error
	Balance(ctx context.Context, token string) (*BalanceView, error)
}
