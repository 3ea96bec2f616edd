package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
	"github.com/hairlogy/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID   models.BarberID `json:"barberId" validate:"required,gt=0"`
	BarberName string          `json:"barberName"`

	ServiceName  string   `json:"serviceName" validate:"required"`
	ServicePrice *float64 `json:"servicePrice" validate:"omitempty,gt=0"`

	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`

	AppointmentDate string `json:"appointmentDate" validate:"required,isodate"`
	AppointmentTime string `json:"appointmentTime" validate:"required,hhmm"`

	DeviceToken string `json:"deviceToken"`
}

func (in *CreateBookingInput) normalize() {
	in.BarberName = strings.TrimSpace(in.BarberName)
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.AppointmentDate = strings.TrimSpace(in.AppointmentDate)
	in.AppointmentTime = strings.TrimSpace(in.AppointmentTime)
	in.DeviceToken = strings.TrimSpace(in.DeviceToken)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	closed   closeddate.Repository
	ref      reference.Repository
	guard    *ConflictGuard
	limiter  *ratelimit.DeviceLimiter
	grid     domain.Grid
	validate *validator.Validate
	audit    *audit.Dispatcher
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	closed closeddate.Repository,
	ref reference.Repository,
	guard *ConflictGuard,
	limiter *ratelimit.DeviceLimiter,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
	now func() time.Time,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		closed:   closed,
		ref:      ref,
		guard:    guard,
		limiter:  limiter,
		grid:     domain.DefaultGrid,
		validate: validators.New(),
		audit:    audit,
		metrics:  metrics,
		log:      log,
		now:      now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Required fields
	// --------------------------------------------------
	in.normalize()
	if err := uc.validate.Struct(in); err != nil {
		return nil, httperr.Validation("invalid_request", validators.Message(err))
	}

	// --------------------------------------------------
	// 2️⃣ Slot grid
	// --------------------------------------------------
	if uc.grid.IsBreak(in.AppointmentTime) {
		return nil, errBreakTime
	}
	if !uc.grid.Contains(in.AppointmentTime) {
		return nil, httperr.Validation("invalid_time", "appointmentTime is not a bookable slot")
	}

	// --------------------------------------------------
	// 3️⃣ Barber and price
	// --------------------------------------------------
	barber, err := uc.ref.GetBarber(ctx, in.BarberID)
	if errors.Is(err, reference.ErrNotFound) {
		return nil, unknownBarber()
	}
	if err != nil {
		return nil, err
	}

	barberName := in.BarberName
	if barberName == "" {
		barberName = barber.Name
	}

	price, err := uc.resolvePrice(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Closed dates
	// --------------------------------------------------
	closedRange, err := uc.closed.FindCovering(ctx, in.AppointmentDate)
	if err != nil {
		return nil, err
	}
	if closedRange != nil {
		return nil, httperr.Validation("date_closed", closedReason(closedRange))
	}

	// --------------------------------------------------
	// 5️⃣ Device limit
	// --------------------------------------------------
	if err := uc.limiter.Check(ctx, in.DeviceToken); err != nil {
		if _, ok := httperr.AsBusiness(err); ok {
			uc.metrics.DeviceLimited.Inc()
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Conflict re-check against the store
	// --------------------------------------------------
	key := domain.SlotKey{BarberID: in.BarberID, Date: in.AppointmentDate, Time: in.AppointmentTime}

	release, err := uc.guard.Reserve(ctx, key)
	if err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.metrics.SlotConflicts.Inc()
		}
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 7️⃣ Persist (auto-confirmed)
	// --------------------------------------------------
	now := uc.now()
	b := &models.Booking{
		ID:                uuid.NewString(),
		BarberID:          in.BarberID,
		BarberName:        barberName,
		ServiceName:       in.ServiceName,
		ServicePrice:      price,
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		AppointmentDate:   in.AppointmentDate,
		AppointmentTime:   in.AppointmentTime,
		Status:            string(domain.InitialStatus()),
		ReminderSent:      false,
		ReminderScheduled: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.DeviceToken != "" {
		token := in.DeviceToken
		b.DeviceToken = &token
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.metrics.SlotConflicts.Inc()
		}
		return nil, translate(err)
	}

	// --------------------------------------------------
	// 8️⃣ Count against the device
	// --------------------------------------------------
	if err := uc.limiter.Record(ctx, in.DeviceToken); err != nil {
		uc.log.Warn("device token not recorded",
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
	}

	// --------------------------------------------------
	// 9️⃣ Audit
	// --------------------------------------------------
	uc.metrics.BookingsCreated.Inc()
	uc.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.Int("barber_id", int(b.BarberID)),
		zap.String("date", b.AppointmentDate),
		zap.String("time", b.AppointmentTime),
	)
	uc.audit.Dispatch(audit.Event{
		Actor:    "customer",
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) resolvePrice(ctx context.Context, in CreateBookingInput) (float64, error) {
	if in.ServicePrice != nil {
		return *in.ServicePrice, nil
	}

	svc, err := uc.ref.GetServiceByName(ctx, in.ServiceName)
	if errors.Is(err, reference.ErrNotFound) {
		return 0, httperr.Validation("invalid_request", "servicePrice is required")
	}
	if err != nil {
		return 0, err
	}
	return svc.Price, nil
}

func closedReason(r *models.ClosedDateRange) string {
	if r.Reason != "" {
		return r.Reason
	}
	return "Closed"
}
