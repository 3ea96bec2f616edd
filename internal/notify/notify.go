package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ReminderEvent is published when staff mark a booking's reminder as sent.
// Delivery to the customer happens downstream.
type ReminderEvent struct {
	BookingID       string    `json:"bookingId"`
	BarberName      string    `json:"barberName"`
	ServiceName     string    `json:"serviceName"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	SentAt          time.Time `json:"sentAt"`
}

type Notifier interface {
	Reminder(ctx context.Context, ev ReminderEvent) error
	Close() error
}

// LogNotifier only logs; used when no broker is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Reminder(_ context.Context, ev ReminderEvent) error {
	n.log.Info("reminder requested",
		zap.String("booking_id", ev.BookingID),
		zap.String("date", ev.AppointmentDate),
		zap.String("time", ev.AppointmentTime),
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
