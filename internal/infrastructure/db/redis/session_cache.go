package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

// cacheTTL bounds how long a resolved session stays cached. This is cache
// hygiene, not session expiry: a miss falls through to the canonical store,
// where sessions live forever.
const cacheTTL = 15 * time.Minute

// SessionCache is a read-through cache for token resolution backed by Redis.
// Key format: session:<token>
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache wraps the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Get returns the cached session for token, or (nil, nil) on a miss.
func (c *SessionCache) Get(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session cache get: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("session cache decode: %w", err)
	}
	return &session, nil
}

// Set caches a resolved session for cacheTTL.
func (c *SessionCache) Set(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(session.Token), raw, cacheTTL).Err()
}

func (c *SessionCache) key(token string) string {
	return "session:" + token
}
