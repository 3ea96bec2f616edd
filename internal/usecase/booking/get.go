package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/models"
)

type GetBooking struct {
	completer
}

func NewGetBooking(
	repo domain.Repository,
	metrics *metrics.Metrics,
	log *zap.Logger,
	now func() time.Time,
) *GetBooking {
	return &GetBooking{
		completer: completer{repo: repo, metrics: metrics, log: log, now: now},
	}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if err := uc.promote(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
