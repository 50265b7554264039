package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "papers-index:sitting:"

// RedisStore caches sitting dates in Redis, one key per day with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to addr and checks the connection.
// A zero ttl stores keys without expiry.
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	if err := validateString(addr, "addr"); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewRedisStoreFromClient(client, ttl), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(day time.Time) string {
	return redisKeyPrefix + day.Format(dayLayout)
}

// GetSittingDate returns the cached sitting date for day.
func (r *RedisStore) GetSittingDate(ctx context.Context, day time.Time) (time.Time, bool, error) {
	if err := validateContext(ctx); err != nil {
		return time.Time{}, false, err
	}

	val, err := r.client.Get(ctx, redisKey(day)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get sitting date: %w", err)
	}

	sitting, err := time.Parse(dayLayout, val)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: sitting date %q", ErrInvalidDate, val)
	}

	return sitting, true, nil
}

// SaveSittingDate stores the sitting date for day.
func (r *RedisStore) SaveSittingDate(ctx context.Context, day, sitting time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDates(day, sitting); err != nil {
		return err
	}

	if err := r.client.Set(ctx, redisKey(day), sitting.Format(dayLayout), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save sitting date: %w", err)
	}
	return nil
}

// ClearSittingDates deletes every key this store has written.
func (r *RedisStore) ClearSittingDates(ctx context.Context) error {
	keys, err := r.keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear sitting dates: %w", err)
	}
	return nil
}

// CountSittingDates returns how many days are cached.
func (r *RedisStore) CountSittingDates(ctx context.Context) (int, error) {
	keys, err := r.keys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (r *RedisStore) keys(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan sitting dates: %w", err)
	}
	return keys, nil
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
