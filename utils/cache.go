// File: tripway/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripway/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for session storage.
	SessionCacheClient *redis.Client
	// WorkflowCacheClient is the dedicated client for booking workflow state.
	WorkflowCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client holding user sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitWorkflowCache initializes the Redis client holding workflow state.
func InitWorkflowCache() {
	WorkflowCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkflowDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := WorkflowCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Workflow): %v", err)
	}
}

// GetWorkflowCacheClient returns the Redis client for workflow state.
func GetWorkflowCacheClient() *redis.Client {
	if WorkflowCacheClient == nil {
		InitWorkflowCache()
	}
	return WorkflowCacheClient
}
