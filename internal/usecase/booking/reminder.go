package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/notify"
)

// MarkReminderSent flags the reminder and hands the event to the notifier.
// A publish failure is logged; the flag stays set.
type MarkReminderSent struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	log      *zap.Logger
	now      func() time.Time
}

func NewMarkReminderSent(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	log *zap.Logger,
	now func() time.Time,
) *MarkReminderSent {
	return &MarkReminderSent{repo: repo, notifier: notifier, audit: audit, log: log, now: now}
}

func (uc *MarkReminderSent) Execute(ctx context.Context, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	now := uc.now()
	if err := uc.repo.MarkReminderSent(ctx, id, now); err != nil {
		return translate(err)
	}

	ev := notify.ReminderEvent{
		BookingID:       b.ID,
		BarberName:      b.BarberName,
		ServiceName:     b.ServiceName,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		SentAt:          now,
	}
	if err := uc.notifier.Reminder(ctx, ev); err != nil {
		uc.log.Error("reminder publish failed", zap.String("booking_id", id), zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "system",
		Action:   "booking_reminder_sent",
		Entity:   "booking",
		EntityID: id,
	})
	return nil
}
