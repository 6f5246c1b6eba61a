package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps cached provider payloads in Redis, shared across
// processes. Entries carry a server-side expiry as an upper bound; the
// fetch client still applies its own TTL on read.
type RedisStore struct {
	client *redis.Client
	maxAge time.Duration
}

func NewRedisStore(addr, password string, db int, maxAge time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client, maxAge: maxAge}, nil
}

func key(ticker string) string {
	return "quote:" + ticker
}

func (r *RedisStore) Get(ctx context.Context, ticker string) (*Entry, error) {
	data, err := r.client.Get(ctx, key(ticker)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", ticker, err)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal cache entry %s: %w", ticker, err)
	}
	return &e, nil
}

func (r *RedisStore) Set(ctx context.Context, e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal cache entry %s: %w", e.Ticker, err)
	}
	if err := r.client.Set(ctx, key(e.Ticker), data, r.maxAge).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", e.Ticker, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, ticker string) error {
	if err := r.client.Del(ctx, key(ticker)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", ticker, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
