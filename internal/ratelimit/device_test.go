package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
)

type fakeStore struct {
	rows map[string]models.DeviceToken
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]models.DeviceToken{}}
}

func (s *fakeStore) Get(_ context.Context, token string) (*models.DeviceToken, error) {
	rec, ok := s.rows[token]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) Save(_ context.Context, t *models.DeviceToken) error {
	s.rows[t.Token] = *t
	return nil
}

func newLimiter(store Store, now *time.Time) *DeviceLimiter {
	return NewDeviceLimiter(store, 2, 3*time.Hour, func() time.Time { return *now }, zap.NewNop())
}

func TestCheck_EmptyTokenBypasses(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	l := newLimiter(store, &now)

	require.NoError(t, l.Check(context.Background(), ""))
	require.NoError(t, l.Record(context.Background(), ""))
	assert.Empty(t, store.rows)
}

func TestCheck_FirstSeenCreatesZeroCount(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	l := newLimiter(store, &now)

	require.NoError(t, l.Check(context.Background(), "dev-1"))

	assert.Equal(t, 0, store.rows["dev-1"].BookingCount)
	assert.Equal(t, now, store.rows["dev-1"].CreatedAt)
}

func TestCheck_LimitedWithinWindow(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	store.rows["dev-1"] = models.DeviceToken{Token: "dev-1", BookingCount: 2, CreatedAt: now.Add(-time.Hour)}
	l := newLimiter(store, &now)

	err := l.Check(context.Background(), "dev-1")

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, 429, be.Status)
	assert.Equal(t, 2.0, be.Details["hoursRemaining"])
}

func TestCheckAndRecord_ResetsAfterWindow(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	store.rows["dev-1"] = models.DeviceToken{Token: "dev-1", BookingCount: 2, CreatedAt: now.Add(-time.Hour)}
	l := newLimiter(store, &now)

	now = now.Add(2*time.Hour + time.Minute)

	require.NoError(t, l.Check(context.Background(), "dev-1"))
	require.NoError(t, l.Record(context.Background(), "dev-1"))

	assert.Equal(t, 1, store.rows["dev-1"].BookingCount)
	assert.Equal(t, now, store.rows["dev-1"].CreatedAt)
}

func TestRecord_IncrementsWithinWindow(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	l := newLimiter(store, &now)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, "dev-1"))
	now = now.Add(10 * time.Minute)
	require.NoError(t, l.Record(ctx, "dev-1"))

	assert.Equal(t, 2, store.rows["dev-1"].BookingCount)
	assert.Error(t, l.Check(ctx, "dev-1"))
}
