package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLock struct {
	client *redis.Client
	tokens *tokenSet
}

func NewRedisLock(redisAddr string) (*RedisLock, error) {
	const op = "lock.NewRedisLock"

	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisLock{client: client, tokens: newTokenSet()}, nil
}

func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "lock.RedisLock.Lock"

	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, redisKey(key), token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if ok {
		r.tokens.put(key, token)
	}

	return ok, nil
}

func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	const op = "lock.RedisLock.Unlock"

	token, ok := r.tokens.take(key)
	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, r.client, []string{redisKey(key)}, token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisLock) Close() error {
	return r.client.Close()
}

func redisKey(key string) string {
	return "lock:" + key
}

// tokenSet remembers the token written by each successful Lock.
type tokenSet struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newTokenSet() *tokenSet {
	return &tokenSet{tokens: map[string]string{}}
}

func (s *tokenSet) put(key, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = token
}

func (s *tokenSet) take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[key]
	delete(s.tokens, key)
	return token, ok
}
