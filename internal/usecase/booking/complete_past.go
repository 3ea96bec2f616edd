package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/metrics"
)

// CompletePast runs passive completion over every confirmed booking
// without waiting for a read.
type CompletePast struct {
	completer
}

func NewCompletePast(
	repo domain.Repository,
	metrics *metrics.Metrics,
	log *zap.Logger,
	now func() time.Time,
) *CompletePast {
	return &CompletePast{
		completer: completer{repo: repo, metrics: metrics, log: log, now: now},
	}
}

func (uc *CompletePast) Execute(ctx context.Context) (int, error) {
	confirmed, err := uc.repo.List(ctx, domain.Filter{Status: string(domain.StatusConfirmed)})
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range confirmed {
		if err := uc.promote(ctx, &confirmed[i]); err != nil {
			return n, err
		}
		if confirmed[i].Status == string(domain.StatusCompleted) {
			n++
		}
	}
	return n, nil
}
