package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
)

// ReconcilePending confirms bookings left pending by older data; new
// bookings are confirmed on creation.
type ReconcilePending struct {
	repo domain.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReconcilePending(repo domain.Repository, log *zap.Logger, now func() time.Time) *ReconcilePending {
	return &ReconcilePending{repo: repo, log: log, now: now}
}

func (uc *ReconcilePending) Execute(ctx context.Context) (int, error) {
	n, err := uc.repo.ConfirmPending(ctx, uc.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.log.Info("pending bookings confirmed", zap.Int("count", n))
	}
	return n, nil
}
