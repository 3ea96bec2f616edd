package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/models"
)

// completer performs passive completion: a confirmed booking whose start
// has passed becomes completed. The conditional write makes it happen once
// and leaves a concurrent staff change alone.
type completer struct {
	repo    domain.Repository
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func (c completer) promote(ctx context.Context, b *models.Booking) error {
	now := c.now()
	if !domain.ShouldAutoComplete(b, now) {
		return nil
	}

	changed, err := c.repo.CompleteIfConfirmed(ctx, b.ID, now)
	if err != nil {
		return err
	}
	if changed {
		domain.Complete(b, now)
		c.metrics.AutoCompleted.Inc()
		c.log.Info("booking auto-completed",
			zap.String("booking_id", b.ID),
			zap.String("date", b.AppointmentDate),
			zap.String("time", b.AppointmentTime),
		)
	}
	return nil
}

type ListBookingsInput struct {
	Status   string
	BarberID *models.BarberID
	Date     string
	Scope    domain.StaffScope
}

type ListBookings struct {
	repo domain.Repository
	completer
}

func NewListBookings(
	repo domain.Repository,
	metrics *metrics.Metrics,
	log *zap.Logger,
	now func() time.Time,
) *ListBookings {
	return &ListBookings{
		repo:      repo,
		completer: completer{repo: repo, metrics: metrics, log: log, now: now},
	}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {

	f := domain.Filter{
		Status:   in.Status,
		BarberID: in.BarberID,
		Date:     in.Date,
	}

	if f.Status != "" {
		if _, err := domain.ParseStatus(f.Status); err != nil {
			return nil, invalidStatus()
		}
	}

	// Staff tied to a barber only see that barber unless they ask for all.
	if own := in.Scope.Barber(); own != nil {
		if f.BarberID != nil && *f.BarberID != *own {
			return []models.Booking{}, nil
		}
		f.BarberID = own
	}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := list[:0]
	for i := range list {
		if err := uc.promote(ctx, &list[i]); err != nil {
			return nil, err
		}
		// A status filter must not return rows that were just promoted away.
		if f.Status != "" && list[i].Status != f.Status {
			continue
		}
		out = append(out, list[i])
	}

	return out, nil
}
