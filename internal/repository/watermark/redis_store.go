// Package watermark keeps the per-user sync watermark in redis, keyed by
// user id. The watermark survives process restarts so a redeploy does not
// force clients into a full re-pull.
package watermark

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"todonotediary-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "sync:watermark:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) contract.WatermarkStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (int64, error) {
	val, err := s.client.Get(ctx, keyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt watermark for user %s: %w", userID, err)
	}
	return ts, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, timestamp int64) error {
	return s.client.Set(ctx, keyPrefix+userID, strconv.FormatInt(timestamp, 10), 0).Err()
}
