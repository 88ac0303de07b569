package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"asdscreen/internal/model"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed handoff store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (s *redisStore) key(sessionID, step string) string {
	return fmt.Sprintf("intake:%s:%s", sessionID, step)
}

func (s *redisStore) Put(ctx context.Context, sessionID, step string, form model.StepForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sessionID, step), data, s.ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, sessionID, step string) (model.StepForm, bool, error) {
	data, err := s.client.Get(ctx, s.key(sessionID, step)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var form model.StepForm
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil, false, err
	}
	return form, true, nil
}
