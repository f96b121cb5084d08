// File: tripway/services/workflow/store.go
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tripway/models"

	"github.com/go-redis/redis/v8"
)

const flowPrefix = "flow:"

// ErrFlowNotFound is returned when a workflow session has expired or
// was cancelled.
var ErrFlowNotFound = errors.New("booking session not found or expired")

// Store persists in-progress workflow sessions. The Redis
// implementation bounds abandoned flows with a TTL; tests substitute an
// in-memory fake.
type Store interface {
	Save(ctx context.Context, w models.WorkflowSession) error
	Get(ctx context.Context, flowID string) (*models.WorkflowSession, error)
	Delete(ctx context.Context, flowID string) error
}

// RedisStore keeps workflow sessions in Redis with a TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (r *RedisStore) Save(ctx context.Context, w models.WorkflowSession) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow session: %w", err)
	}
	if err := r.Client.Set(ctx, flowPrefix+w.FlowID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store workflow session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, flowID string) (*models.WorkflowSession, error) {
	data, err := r.Client.Get(ctx, flowPrefix+flowID).Result()
	if err == redis.Nil {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow session: %w", err)
	}
	var w models.WorkflowSession
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("failed to parse workflow session: %w", err)
	}
	return &w, nil
}

func (r *RedisStore) Delete(ctx context.Context, flowID string) error {
	return r.Client.Del(ctx, flowPrefix+flowID).Err()
}
