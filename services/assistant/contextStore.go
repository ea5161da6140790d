package assistant

import (
	"context"
	"encoding/json"
	"time"

	"eliezerclean/models"

	"github.com/go-redis/redis/v8"
)

const assistantContextPrefix = "ai:ctx:"

// Keep only the most recent turns; older history adds nothing to the prompt.
const maxContextMessages = 10

// RedisContextStore keeps per-client conversation history with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, clientID string) (*models.AssistantContext, error) {
	key := assistantContextPrefix + clientID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aiCtx models.AssistantContext
	if err := json.Unmarshal([]byte(data), &aiCtx); err != nil {
		return nil, err
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, clientID string, aiCtx *models.AssistantContext) error {
	if len(aiCtx.Messages) > maxContextMessages {
		aiCtx.Messages = aiCtx.Messages[len(aiCtx.Messages)-maxContextMessages:]
	}
	key := assistantContextPrefix + clientID
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, clientID string) error {
	key := assistantContextPrefix + clientID
	return s.client.Del(ctx, key).Err()
}
