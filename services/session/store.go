// File: tripway/services/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tripway/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// ErrNotFound is returned when no session exists for an ID (expired,
// logged out, or never created).
var ErrNotFound = errors.New("session not found")

// Store persists sessions. The Redis implementation is the production
// backend; tests substitute an in-memory fake.
type Store interface {
	Save(ctx context.Context, s models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions in Redis with a sliding TTL. The user blob
// and the gateway bearer token live in one record under one key, so
// they are always written and cleared together.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (r *RedisStore) Save(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.Client.Set(ctx, sessionPrefix+s.SessionID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var s models.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionPrefix+sessionID).Err()
}
