package app

import (
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/archive"
	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/auth"
	"github.com/hairlogy/barber-booking/internal/config"
	"github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/lock"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/notify"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
	"github.com/hairlogy/barber-booking/internal/timezone"
	ucBooking "github.com/hairlogy/barber-booking/internal/usecase/booking"
	ucClosed "github.com/hairlogy/barber-booking/internal/usecase/closeddate"
	ucReference "github.com/hairlogy/barber-booking/internal/usecase/reference"
)

// Stores is one storage driver's set of repositories.
type Stores struct {
	Bookings     booking.Repository
	ClosedDates  closeddate.Repository
	Reference    reference.Repository
	DeviceTokens ratelimit.Store
	AuditLogs    audit.Store
}

// Deps are the outer collaborators the container wires use cases to.
// Archiver may be nil; Notifier defaults to a log notifier.
type Deps struct {
	Config   *config.Config
	Stores   Stores
	Locker   lock.Locker
	Archiver archive.Archiver
	Notifier notify.Notifier
	Metrics  *metrics.Metrics
	Log      *zap.Logger
	Clock    timezone.Clock
}

// ======================================================
// CONTAINER
// ======================================================

type Container struct {
	Clock   timezone.Clock
	Metrics *metrics.Metrics
	Log     *zap.Logger

	Audit      *audit.Dispatcher
	AuditStore audit.Store
	Auth       *auth.Service

	// -------- Bookings --------
	CreateBooking    *ucBooking.CreateBooking
	GetAvailability  *ucBooking.GetAvailability
	ListBookings     *ucBooking.ListBookings
	GetBooking       *ucBooking.GetBooking
	UpdateStatus     *ucBooking.UpdateStatus
	DeleteBooking    *ucBooking.DeleteBooking
	MarkReminderSent *ucBooking.MarkReminderSent
	GetStats         *ucBooking.GetStats
	RetentionSweep   *ucBooking.RetentionSweep
	ReconcilePending *ucBooking.ReconcilePending
	CompletePast     *ucBooking.CompletePast

	// -------- Closed dates --------
	CreateClosedDate *ucClosed.Create
	ListClosedDates  *ucClosed.List
	DeleteClosedDate *ucClosed.Delete

	// -------- Reference --------
	Seed         *ucReference.Seed
	ListBarbers  *ucReference.ListBarbers
	ListServices *ucReference.ListServices
	GetStaff     *ucReference.GetStaff
}

func NewContainer(d Deps) *Container {
	cfg := d.Config
	log := d.Log

	clock := d.Clock
	if clock == nil {
		clock = timezone.NewClock(cfg.Timezone)
	}

	locker := d.Locker
	if locker == nil {
		locker = lock.Noop{}
	}

	notifier := d.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}

	dispatcher := audit.NewDispatcher(audit.New(d.Stores.AuditLogs), log)

	limiter := ratelimit.NewDeviceLimiter(
		d.Stores.DeviceTokens,
		cfg.DeviceBookingLimit,
		cfg.DeviceWindow,
		clock,
		log,
	)
	guard := ucBooking.NewConflictGuard(d.Stores.Bookings, locker, log)

	bookings := d.Stores.Bookings
	closed := d.Stores.ClosedDates
	ref := d.Stores.Reference

	return &Container{
		Clock:   clock,
		Metrics: d.Metrics,
		Log:     log,

		Audit:      dispatcher,
		AuditStore: d.Stores.AuditLogs,
		Auth:       auth.NewService(ref, cfg.JWTSecret, cfg.JWTTTL),

		CreateBooking: ucBooking.NewCreateBooking(
			bookings, closed, ref, guard, limiter, dispatcher, d.Metrics, log, clock,
		),
		GetAvailability:  ucBooking.NewGetAvailability(bookings, closed, ref),
		ListBookings:     ucBooking.NewListBookings(bookings, d.Metrics, log, clock),
		GetBooking:       ucBooking.NewGetBooking(bookings, d.Metrics, log, clock),
		UpdateStatus:     ucBooking.NewUpdateStatus(bookings, dispatcher, log, clock),
		DeleteBooking:    ucBooking.NewDeleteBooking(bookings, dispatcher),
		MarkReminderSent: ucBooking.NewMarkReminderSent(bookings, notifier, dispatcher, log, clock),
		GetStats:         ucBooking.NewGetStats(bookings, ref, clock),
		RetentionSweep:   ucBooking.NewRetentionSweep(bookings, d.Archiver, d.Metrics, log),
		ReconcilePending: ucBooking.NewReconcilePending(bookings, log, clock),
		CompletePast:     ucBooking.NewCompletePast(bookings, d.Metrics, log, clock),

		CreateClosedDate: ucClosed.NewCreate(closed, dispatcher, clock),
		ListClosedDates:  ucClosed.NewList(closed),
		DeleteClosedDate: ucClosed.NewDelete(closed, dispatcher),

		Seed:         ucReference.NewSeed(ref, cfg.SeedStaffPassword, log, clock),
		ListBarbers:  ucReference.NewListBarbers(ref),
		ListServices: ucReference.NewListServices(ref),
		GetStaff:     ucReference.NewGetStaff(ref),
	}
}

// Close flushes pending audit events.
func (c *Container) Close() {
	c.Audit.Close()
}
