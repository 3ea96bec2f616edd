package booking

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/infra/memstore"
	"github.com/hairlogy/barber-booking/internal/lock"
	"github.com/hairlogy/barber-booking/internal/metrics"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
)

var istanbul = time.FixedZone("TRT", 3*3600)

type fixture struct {
	repo    *memstore.Bookings
	closed  *memstore.ClosedDates
	ref     *memstore.Reference
	tokens  *memstore.DeviceTokens
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		repo:    memstore.NewBookings(),
		closed:  memstore.NewClosedDates(),
		ref:     memstore.NewReference(),
		tokens:  memstore.NewDeviceTokens(),
		metrics: metrics.NewNop(),
		log:     zap.NewNop(),
		now:     time.Date(2025, 6, 9, 12, 0, 0, 0, istanbul),
	}
	f.audit = audit.NewDispatcher(audit.New(memstore.NewAuditLogs()), f.log)
	t.Cleanup(f.audit.Close)

	for _, b := range []models.Barber{
		{ID: 1, Name: "Hıdır Yasin Gökçeoğlu", Active: true},
		{ID: 2, Name: "Emir Gökçeoğlu", Active: true},
	} {
		b := b
		_, err := f.ref.EnsureBarber(ctx, &b)
		require.NoError(t, err)
	}
	_, err := f.ref.EnsureService(ctx, &models.Service{ID: 1, Name: "Saç Kesimi", DurationMin: 30, Price: 150, Active: true})
	require.NoError(t, err)

	return f
}

func (f *fixture) clock() time.Time { return f.now }

func (f *fixture) createBooking() *CreateBooking {
	limiter := ratelimit.NewDeviceLimiter(f.tokens, 2, 3*time.Hour, f.clock, f.log)
	guard := NewConflictGuard(f.repo, lock.NewLocal(), f.log)

	return NewCreateBooking(f.repo, f.closed, f.ref, guard, limiter, f.audit, f.metrics, f.log, f.clock)
}

func (f *fixture) seed(t *testing.T, id string, barber models.BarberID, date, clock string, status domain.Status) {
	t.Helper()
	require.NoError(t, f.repo.Create(context.Background(), &models.Booking{
		ID:              id,
		BarberID:        barber,
		BarberName:      "seeded",
		ServiceName:     "Saç Kesimi",
		ServicePrice:    150,
		AppointmentDate: date,
		AppointmentTime: clock,
		Status:          string(status),
	}))
}

func validInput() CreateBookingInput {
	price := 150.0
	return CreateBookingInput{
		BarberID:        1,
		ServiceName:     "Saç Kesimi",
		ServicePrice:    &price,
		CustomerName:    "Ali Veli",
		CustomerPhone:   "+905551112233",
		AppointmentDate: "2025-06-10",
		AppointmentTime: "11:00",
	}
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return -1
	}
	return m.GetCounter().GetValue()
}
