package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mywallet/wallet-api/internal/core/domain"
	"github.com/mywallet/wallet-api/internal/core/ports"
	"github.com/mywallet/wallet-api/internal/core/validation"
)

// LedgerService appends income/outcome entries and builds balance views.
type LedgerService struct {
	users    ports.UserRepository
	resolver *SessionResolver
	logger   zerolog.Logger
	now      func() time.Time
}

func NewLedgerService(users ports.UserRepository, resolver *SessionResolver, logger zerolog.Logger) *LedgerService {
	return &LedgerService{users: users, resolver: resolver, logger: logger, now: time.Now}
}

// RecordIncome appends one entry to the caller's income list.
func (s *LedgerService) RecordIncome(ctx context.Context, input ports.RecordEntryInput) error {
	return s.record(ctx, domain.EntryIncome, input)
}

// RecordOutcome appends one entry to the caller's outcome list.
func (s *LedgerService) RecordOutcome(ctx context.Context, input ports.RecordEntryInput) error {
	return s.record(ctx, domain.EntryOutcome, input)
}

// record validates the entry, resolves the token, and appends the dated
// transaction atomically. An unresolvable token is an authentication failure
// for write operations.
func (s *LedgerService) record(ctx context.Context, kind domain.EntryKind, input ports.RecordEntryInput) error {
	amount := input.Amount
	if err := validation.Entry(&amount, input.Description); err != nil {
		return err
	}

	session, err := s.resolver.Resolve(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.ErrUnauthenticated
		}
		return err
	}

	entry := domain.Transaction{
		Amount:      input.Amount,
		Description: input.Description,
		Date:        s.now().Format(domain.DateLayout),
	}
	if err := s.users.AppendEntry(ctx, session.UserID, kind, entry); err != nil {
		s.logger.Error().Err(err).Str("user_id", session.UserID).Str("kind", string(kind)).Msg("failed to append ledger entry")
		return err
	}

	s.logger.Info().Str("user_id", session.UserID).Str("kind", string(kind)).Int64("amount", input.Amount).Msg("ledger entry recorded")
	return nil
}

// Balance returns the caller's name and full transaction history with
// credentials stripped. A token that does not resolve to a session or a user
// fails with ErrUserNotFound rather than dereferencing a missing identity.
func (s *LedgerService) Balance(ctx context.Context, token string) (*ports.BalanceView, error) {
	session, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	view := &ports.BalanceView{
		Name:     user.Name,
		Incomes:  user.Incomes,
		Outcomes: user.Outcomes,
	}
	// Lists that were never written to render as [] rather than null.
	if view.Incomes == nil {
		view.Incomes = []domain.Transaction{}
	}
	if view.Outcomes == nil {
		view.Outcomes = []domain.Transaction{}
	}
	return view, nil
}
