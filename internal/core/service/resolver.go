package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mywallet/wallet-api/internal/core/domain"
	"github.com/mywallet/wallet-api/internal/core/ports"
)

// SessionCache abstracts the read-through cache (Redis) in front of the
// session store. A nil session with a nil error is a cache miss.
type SessionCache interface {
	Get(ctx context.Context, token string) (*domain.Session, error)
	Set(ctx context.Context, session *domain.Session) error
}

// SessionResolver turns a bearer token into the session it identifies. It is
// shared by every protected operation. Tokens carry no expiry; a session
// found in the store is always valid.
type SessionResolver struct {
	sessions ports.SessionRepository
	cache    SessionCache
	log      zerolog.Logger
}

// NewSessionResolver builds a resolver. cache may be nil, in which case every
// lookup goes straight to the store.
func NewSessionResolver(sessions ports.SessionRepository, cache SessionCache, log zerolog.Logger) *SessionResolver {
	return &SessionResolver{sessions: sessions, cache: cache, log: log}
}

// Resolve looks up the session for token. A blank token fails with
// ErrUnauthenticated; an unknown one with ErrSessionNotFound. Cache failures
// are logged and fall through to the store.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, token)
		if err != nil {
			r.log.Warn().Err(err).Msg("session cache lookup failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	session, err := r.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, session); err != nil {
			r.log.Warn().Err(err).Msg("failed to populate session cache")
		}
	}
	return session, nil
}
