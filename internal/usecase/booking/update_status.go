package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
)

// UpdateStatus lets staff move a booking to any of the four statuses.
// Transitions are not otherwise restricted.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	now func() time.Time,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit, log: log, now: now}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id string,
	status string,
	actor string,
) error {

	st, err := domain.ParseStatus(status)
	if err != nil {
		return invalidStatus()
	}

	// Un-cancelling onto a slot someone else now holds fails with slot_taken.
	if err := uc.repo.UpdateStatus(ctx, id, st, uc.now()); err != nil {
		return translate(err)
	}

	uc.log.Info("booking status updated",
		zap.String("booking_id", id),
		zap.String("status", string(st)),
		zap.String("actor", actor),
	)
	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]string{"status": string(st)},
	})

	return nil
}
