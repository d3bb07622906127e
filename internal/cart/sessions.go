package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velora-shop/storefront-backend/pkg/config"
	"github.com/velora-shop/storefront-backend/pkg/logger"
	"github.com/velora-shop/storefront-backend/pkg/redis"
)

// Sessions hands out a hydrated Store per session id, each backed by its own
// redis slot. Stores are not cached: every request rehydrates from redis, so
// two devices sharing a session id converge on the persisted state.
type Sessions struct {
	client *redis.Client
	ttl    time.Duration
	logg   *logger.Logger
}

// NewSessions builds a session manager persisting carts for cfg.SessionTTL.
func NewSessions(client *redis.Client, cfg config.CartConfig, logg *logger.Logger) (*Sessions, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &Sessions{client: client, ttl: cfg.SessionTTL, logg: logg}, nil
}

// Store returns the cart store for the given session, hydrated from redis.
func (s *Sessions) Store(ctx context.Context, sessionID string) *Store {
	slot := &redisSlot{
		client: s.client,
		key:    s.client.CartKey(sessionID),
		ttl:    s.ttl,
	}
	return NewStore(ctx, slot, s.logg)
}

// redisSlot adapts one namespaced redis key to the Slot interface. Every Save
// refreshes the TTL, so the cart expires only after the session goes idle.
type redisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func (r *redisSlot) Save(ctx context.Context, payload []byte) error {
	return r.client.Set(ctx, r.key, string(payload), r.ttl)
}

func (r *redisSlot) Load(ctx context.Context) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *redisSlot) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key)
}
