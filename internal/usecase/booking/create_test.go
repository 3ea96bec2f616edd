package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
)

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.ServicePrice = nil
	in.DeviceToken = "dev-1"

	b, err := f.createBooking().Execute(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, "Hıdır Yasin Gökçeoğlu", b.BarberName)
	assert.Equal(t, 150.0, b.ServicePrice)
	assert.False(t, b.ReminderSent)
	assert.True(t, b.ReminderScheduled)
	require.NotNil(t, b.DeviceToken)

	tok, _ := f.tokens.Get(context.Background(), "dev-1")
	require.NotNil(t, tok)
	assert.Equal(t, 1, tok.BookingCount)
	assert.Equal(t, 1.0, counterValue(f.metrics.BookingsCreated))
}

func TestCreateBooking_BreakTimeAlwaysRejected(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.AppointmentTime = "16:00"

	_, err := f.createBooking().Execute(context.Background(), in)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "break_time", be.Code)
	assert.Equal(t, 400, be.Status)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	cases := map[string]func(*CreateBookingInput){
		"missing phone":  func(in *CreateBookingInput) { in.CustomerPhone = " " },
		"missing name":   func(in *CreateBookingInput) { in.CustomerName = "" },
		"missing barber": func(in *CreateBookingInput) { in.BarberID = 0 },
		"bad date":       func(in *CreateBookingInput) { in.AppointmentDate = "10/06/2025" },
		"bad email":      func(in *CreateBookingInput) { in.CustomerEmail = "nope" },
		"off grid":       func(in *CreateBookingInput) { in.AppointmentTime = "11:30" },
		"unknown barber": func(in *CreateBookingInput) { in.BarberID = 9 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			mutate(&in)

			_, err := f.createBooking().Execute(context.Background(), in)

			be, ok := httperr.AsBusiness(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, 400, be.Status)
		})
	}
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "existing", 1, "2025-06-10", "11:00", domain.StatusConfirmed)

	_, err := f.createBooking().Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateBooking_CancelledSlotIsFree(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "old", 1, "2025-06-10", "11:00", domain.StatusCancelled)

	_, err := f.createBooking().Execute(context.Background(), validInput())

	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentSameSlotOneWinner(t *testing.T) {
	f := newFixture(t)
	uc := f.createBooking()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validInput())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case httperr.IsBusiness(err, "slot_taken"):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	times, _ := f.repo.ListBookedTimes(context.Background(), 1, "2025-06-10")
	assert.Equal(t, []string{"11:00"}, times)
}

func TestCreateBooking_DeviceLimited(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.tokens.Save(context.Background(), &models.DeviceToken{
		Token:        "dev-1",
		BookingCount: 2,
		CreatedAt:    f.now.Add(-time.Hour),
	}))

	in := validInput()
	in.DeviceToken = "dev-1"
	_, err := f.createBooking().Execute(context.Background(), in)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, 429, be.Status)
	assert.Equal(t, 2.0, be.Details["hoursRemaining"])

	times, _ := f.repo.ListBookedTimes(context.Background(), 1, "2025-06-10")
	assert.Empty(t, times)
}

func TestCreateBooking_DeviceWindowResets(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.tokens.Save(context.Background(), &models.DeviceToken{
		Token:        "dev-1",
		BookingCount: 2,
		CreatedAt:    f.now.Add(-3*time.Hour - time.Minute),
	}))

	in := validInput()
	in.DeviceToken = "dev-1"
	_, err := f.createBooking().Execute(context.Background(), in)
	require.NoError(t, err)

	tok, _ := f.tokens.Get(context.Background(), "dev-1")
	assert.Equal(t, 1, tok.BookingCount)
	assert.Equal(t, f.now, tok.CreatedAt)
}

func TestCreateBooking_ClosedDate(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.closed.Create(context.Background(), &models.ClosedDateRange{
		ID: "c1", StartDate: "2025-06-10", EndDate: "2025-06-12", Reason: "Bayram",
	}))

	_, err := f.createBooking().Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "date_closed"))
}
