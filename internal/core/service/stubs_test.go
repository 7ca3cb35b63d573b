package service

import (
	"context"
	"fmt"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// In-memory stand-ins for the Mongo repositories, shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Incomes = append([]domain.Transaction(nil), u.Incomes...)
	clone.Outcomes = append([]domain.Transaction(nil), u.Outcomes...)
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == user.Name {
			return nil, domain.ErrDuplicateName
		}
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) AppendEntry(_ context.Context, userID string, kind domain.EntryKind, entry domain.Transaction) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if kind == domain.EntryOutcome {
		u.Outcomes = append(u.Outcomes, entry)
	} else {
		u.Incomes = append(u.Incomes, entry)
	}
	return nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) DeleteAll(_ context.Context) error {
	r.users = make(map[string]*domain.User)
	return nil
}

type stubSessionRepo struct {
	sessions map[string]*domain.Session // keyed by token
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Insert(_ context.Context, session *domain.Session) error {
	clone := *session
	r.sessions[session.Token] = &clone
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) ListAll(_ context.Context) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	return out, nil
}

// stubSessionCache records cache traffic so resolver tests can assert on it.
type stubSessionCache struct {
	entries map[string]*domain.Session
	gets    int
	sets    int
	failing bool
}

func newStubSessionCache() *stubSessionCache {
	return &stubSessionCache{entries: make(map[string]*domain.Session)}
}

func (c *stubSessionCache) Get(_ context.Context, token string) (*domain.Session, error) {
	c.gets++
	if c.failing {
		return nil, fmt.Errorf("cache down")
	}
	if s, ok := c.entries[token]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (c *stubSessionCache) Set(_ context.Context, session *domain.Session) error {
	c.sets++
	if c.failing {
		return fmt.Errorf("cache down")
	}
	clone := *session
	c.entries[session.Token] = &clone
	return nil
}
