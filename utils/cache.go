// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eliezerclean/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-progress booking wizard sessions.
	SessionCacheClient *redis.Client
	// AssistantCacheClient holds AI assistant conversation context.
	AssistantCacheClient *redis.Client
	// PrefsCacheClient holds per-client display preferences.
	PrefsCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// GetSessionCacheClient returns the Redis client for booking sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetAssistantCacheClient returns the Redis client for assistant context.
func GetAssistantCacheClient() *redis.Client {
	if AssistantCacheClient == nil {
		AssistantCacheClient = newClient(config.AppConfig.RedisAssistDB)
	}
	return AssistantCacheClient
}

// GetPrefsCacheClient returns the Redis client for client preferences.
func GetPrefsCacheClient() *redis.Client {
	if PrefsCacheClient == nil {
		PrefsCacheClient = newClient(config.AppConfig.RedisPrefsDB)
	}
	return PrefsCacheClient
}
