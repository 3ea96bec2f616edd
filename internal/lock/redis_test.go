package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSet_TakeForgetsToken(t *testing.T) {
	s := newTokenSet()
	s.put("k", "t1")

	token, ok := s.take("k")
	require.True(t, ok)
	assert.Equal(t, "t1", token)

	_, ok = s.take("k")
	assert.False(t, ok)
}

func TestRedisLock_UnlockKeepsForeignHolder(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	l, err := NewRedisLock(addr)
	require.NoError(t, err)
	defer l.Close()

	key := "test:" + t.Name()
	defer l.client.Del(ctx, redisKey(key))

	ok, err := l.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// another instance took over after our hold expired
	require.NoError(t, l.client.Set(ctx, redisKey(key), "foreign", time.Minute).Err())

	require.NoError(t, l.Unlock(ctx, key))
	held, err := l.client.Get(ctx, redisKey(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, "foreign", held)

	require.NoError(t, l.client.Del(ctx, redisKey(key)).Err())
	ok, err = l.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l.Unlock(ctx, key))

	n, err := l.client.Exists(ctx, redisKey(key)).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}
