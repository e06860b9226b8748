package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces booking session keys in a shared Redis database.
const keyPrefix = "booking_session"

// RedisStore persists session state in Redis with a sliding TTL.
// Each session key is stored as its own string value.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore creates a RedisStore. Every Save refreshes the TTL of the written keys.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and applies the connection timeouts used for session traffic.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt), nil
}

func redisKey(sessionID, key string) string {
	return keyPrefix + ":" + sessionID + ":" + key
}

// Load implements Store with a single MGET.
func (s *RedisStore) Load(ctx context.Context, sessionID string, keys []string) (map[string][]byte, error) {
	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = redisKey(sessionID, k)
	}

	values, err := s.redis.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	out := make(map[string][]byte, len(keys))
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		out[keys[i]] = []byte(str)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Save implements Store. All keys are written in one MULTI/EXEC transaction so a
// concurrent Load never sees a mix of two revisions.
func (s *RedisStore) Save(ctx context.Context, sessionID string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.SetEx(ctx, redisKey(sessionID, e.Key), string(e.Value), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
