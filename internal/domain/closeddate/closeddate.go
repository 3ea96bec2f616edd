package closeddate

import (
	"context"
	"errors"

	"github.com/hairlogy/barber-booking/internal/models"
)

var ErrNotFound = errors.New("closed date range not found")

// Overlaps applies the inclusive test start <= otherEnd && end >= otherStart
// on YYYY-MM-DD strings, so ranges sharing a single day collide.
func Overlaps(start, end string, other models.ClosedDateRange) bool {
	return start <= other.EndDate && end >= other.StartDate
}

func Covers(r models.ClosedDateRange, date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

type Repository interface {
	Create(ctx context.Context, r *models.ClosedDateRange) error

	// List is ordered by start date ascending.
	List(ctx context.Context) ([]models.ClosedDateRange, error)

	FindOverlapping(ctx context.Context, start, end string) ([]models.ClosedDateRange, error)

	// FindCovering returns nil when no range covers date.
	FindCovering(ctx context.Context, date string) (*models.ClosedDateRange, error)

	Delete(ctx context.Context, id string) error
}
