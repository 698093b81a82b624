package rates

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares rate snapshots between processes through redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a Store to the redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}
