package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive process restarts and can
// be shared by multiple instances. Expiry is delegated to Redis TTLs.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(Session{Username: username, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+token, payload, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Has(ctx context.Context, token string) bool {
	n, err := s.rdb.Exists(ctx, redisKeyPrefix+token).Result()
	return err == nil && n > 0
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+token).Err()
}

// Cleanup is a no-op: every key is written with SessionTTL and Redis evicts
// it on its own.
func (s *RedisStore) Cleanup(context.Context, time.Duration) error {
	return nil
}
