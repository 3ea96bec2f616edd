package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_LockUnlock(t *testing.T) {
	ctx := context.Background()
	l := NewLocal()

	ok, err := l.Lock(ctx, "slot:1:2025-06-10:11:00", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.Lock(ctx, "slot:1:2025-06-10:11:00", time.Minute)
	assert.False(t, ok)

	ok, _ = l.Lock(ctx, "slot:2:2025-06-10:11:00", time.Minute)
	assert.True(t, ok)

	require.NoError(t, l.Unlock(ctx, "slot:1:2025-06-10:11:00"))
	ok, _ = l.Lock(ctx, "slot:1:2025-06-10:11:00", time.Minute)
	assert.True(t, ok)
}

func TestLocal_ExpiredLockCanBeRetaken(t *testing.T) {
	ctx := context.Background()
	l := NewLocal()

	ok, _ := l.Lock(ctx, "k", time.Nanosecond)
	require.True(t, ok)
	time.Sleep(time.Millisecond)

	ok, _ = l.Lock(ctx, "k", time.Minute)
	assert.True(t, ok)
}
