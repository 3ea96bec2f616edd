package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/lock"
)

const slotLockTTL = 10 * time.Second

// ConflictGuard re-checks a slot against the store right before a booking
// is written. The short-lived lock narrows the window between check and
// insert; the store's unique index closes it.
type ConflictGuard struct {
	repo   domain.Repository
	locker lock.Locker
	log    *zap.Logger
}

func NewConflictGuard(repo domain.Repository, locker lock.Locker, log *zap.Logger) *ConflictGuard {
	return &ConflictGuard{repo: repo, locker: locker, log: log}
}

// Reserve returns a release func on success. A slot whose lock is held by
// another writer counts as taken.
func (g *ConflictGuard) Reserve(ctx context.Context, key domain.SlotKey) (func(), error) {
	lockKey := "slot:" + key.String()

	locked, err := g.locker.Lock(ctx, lockKey, slotLockTTL)
	switch {
	case err != nil:
		// The unique index still rejects a duplicate.
		g.log.Warn("slot lock unavailable", zap.String("slot", lockKey), zap.Error(err))
	case !locked:
		return nil, errSlotTaken
	}

	release := func() {
		if !locked {
			return
		}
		if err := g.locker.Unlock(context.Background(), lockKey); err != nil {
			g.log.Warn("slot unlock failed", zap.String("slot", lockKey), zap.Error(err))
		}
	}

	taken, err := g.repo.IsSlotTaken(ctx, key)
	if err != nil {
		release()
		return nil, err
	}
	if taken {
		release()
		return nil, errSlotTaken
	}

	return release, nil
}
