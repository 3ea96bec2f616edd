package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
)

type Store interface {
	// Get returns nil, nil when the token has never been seen.
	Get(ctx context.Context, token string) (*models.DeviceToken, error)
	Save(ctx context.Context, t *models.DeviceToken) error
}

// DeviceLimiter caps bookings per client-generated device token inside a
// rolling window measured from the record's CreatedAt. An empty token is
// not limited.
type DeviceLimiter struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
	log    *zap.Logger
}

func NewDeviceLimiter(
	store Store,
	limit int,
	window time.Duration,
	now func() time.Time,
	log *zap.Logger,
) *DeviceLimiter {
	return &DeviceLimiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    now,
		log:    log,
	}
}

// Check gates a booking attempt. It never increments the counter.
func (l *DeviceLimiter) Check(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	rec, err := l.store.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("device token lookup: %w", err)
	}

	now := l.now()

	if rec == nil {
		return l.save(ctx, &models.DeviceToken{Token: token, CreatedAt: now, UpdatedAt: now})
	}

	elapsed := now.Sub(rec.CreatedAt)
	if elapsed >= l.window {
		rec.BookingCount = 0
		rec.CreatedAt = now
		rec.UpdatedAt = now
		return l.save(ctx, rec)
	}

	if rec.BookingCount >= l.limit {
		remaining := (l.window - elapsed).Hours()
		l.log.Info("device booking limit reached",
			zap.String("device_token", token),
			zap.Int("count", rec.BookingCount),
			zap.Float64("hours_remaining", remaining),
		)
		return httperr.RateLimited(
			fmt.Sprintf("booking limit reached for this device, try again in %.1f hours", remaining),
			remaining,
		)
	}

	return nil
}

// Record counts a booking that was actually created.
func (l *DeviceLimiter) Record(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	rec, err := l.store.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("device token lookup: %w", err)
	}

	now := l.now()

	switch {
	case rec == nil:
		rec = &models.DeviceToken{Token: token, BookingCount: 1, CreatedAt: now}
	case now.Sub(rec.CreatedAt) >= l.window:
		rec.BookingCount = 1
		rec.CreatedAt = now
	default:
		rec.BookingCount++
	}
	rec.UpdatedAt = now

	return l.save(ctx, rec)
}

func (l *DeviceLimiter) save(ctx context.Context, rec *models.DeviceToken) error {
	if err := l.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("device token save: %w", err)
	}
	return nil
}
