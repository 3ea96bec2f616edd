package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/archive"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/models"
)

// RetentionBatchSize is the most bookings removed per delete call.
const RetentionBatchSize = 500

// RetentionSweep deletes bookings dated strictly before a threshold, one
// batch at a time. Each batch is archived first when an archiver is set.
type RetentionSweep struct {
	repo     domain.Repository
	archiver archive.Archiver
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewRetentionSweep(
	repo domain.Repository,
	archiver archive.Archiver,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *RetentionSweep {
	return &RetentionSweep{repo: repo, archiver: archiver, metrics: metrics, log: log}
}

func (uc *RetentionSweep) Execute(ctx context.Context, threshold string) (int, error) {
	total := 0

	for batch := 0; ; batch++ {
		rows, err := uc.repo.ListBefore(ctx, threshold, RetentionBatchSize)
		if err != nil {
			return total, fmt.Errorf("retention list: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		if uc.archiver != nil {
			if err := uc.archiver.Archive(ctx, threshold, batch, rows); err != nil {
				return total, fmt.Errorf("retention archive: %w", err)
			}
		}

		n, err := uc.repo.DeleteByIDs(ctx, ids(rows))
		if err != nil {
			return total, fmt.Errorf("retention delete: %w", err)
		}
		total += n
		uc.metrics.RetentionDeleted.Add(float64(n))

		if n == 0 || len(rows) < RetentionBatchSize {
			break
		}
	}

	uc.log.Info("retention sweep finished",
		zap.String("threshold", threshold),
		zap.Int("deleted", total),
	)
	return total, nil
}

func ids(rows []models.Booking) []string {
	out := make([]string, len(rows))
	for i, b := range rows {
		out[i] = b.ID
	}
	return out
}
