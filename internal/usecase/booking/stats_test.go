package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/models"
)

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", 1, "2025-06-09", "11:00", domain.StatusConfirmed)
	f.seed(t, "b", 1, "2025-06-09", "12:00", domain.StatusCancelled)
	f.seed(t, "c", 2, "2025-06-08", "11:00", domain.StatusCompleted)

	stats, err := NewGetStats(f.repo, f.ref, f.clock).Execute(context.Background(), domain.StaffScope{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 2, stats.TodayBookings)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.ElementsMatch(t, []StatusCount{
		{Status: "confirmed", Count: 1},
		{Status: "completed", Count: 1},
		{Status: "cancelled", Count: 1},
	}, stats.BookingsByStatus)

	require.Contains(t, stats.RevenueByBarber, "1")
	assert.Equal(t, 150.0, stats.RevenueByBarber["1"].Total)
	assert.Equal(t, []TrendPoint{{Date: "2025-06-09", Revenue: 150}}, stats.RevenueByBarber["1"].Trends)
}

func TestGetStats_StaffScoped(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", 1, "2025-06-09", "11:00", domain.StatusConfirmed)
	f.seed(t, "b", 2, "2025-06-09", "11:00", domain.StatusConfirmed)

	own := models.BarberID(2)
	stats, err := NewGetStats(f.repo, f.ref, f.clock).Execute(context.Background(), domain.StaffScope{BarberID: &own})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 150.0, stats.TotalRevenue)
	assert.Zero(t, stats.RevenueByBarber["1"].Total)
}

func TestAggregate_UnknownStatusCountsAsPending(t *testing.T) {
	list := []models.Booking{
		{BarberID: 1, AppointmentDate: "2025-06-09", ServicePrice: 100, Status: ""},
		{BarberID: 1, AppointmentDate: "2025-06-09", ServicePrice: 100, Status: "archived"},
		{BarberID: 1, AppointmentDate: "2025-06-09", ServicePrice: 100, Status: string(domain.StatusPending)},
		{BarberID: 1, AppointmentDate: "2025-06-09", ServicePrice: 100, Status: string(domain.StatusConfirmed)},
	}

	stats := aggregate(list, []models.Barber{{ID: 1, Name: "Yasin"}}, "2025-06-09")

	assert.Equal(t, []StatusCount{
		{Status: "pending", Count: 3},
		{Status: "confirmed", Count: 1},
	}, stats.BookingsByStatus)

	sum := 0
	for _, sc := range stats.BookingsByStatus {
		sum += sc.Count
	}
	assert.Equal(t, stats.TotalBookings, sum)
}

func TestTrend_KeepsLastThirtyDatesAscending(t *testing.T) {
	var list []models.Booking
	for d := 1; d <= 40; d++ {
		list = append(list, models.Booking{
			BarberID:        1,
			AppointmentDate: fmt.Sprintf("2025-05-%02d", d%31+1),
			ServicePrice:    10,
			Status:          string(domain.StatusCompleted),
		})
	}

	stats := aggregate(list, []models.Barber{{ID: 1, Name: "Yasin"}}, "2025-06-09")
	trends := stats.RevenueByBarber["1"].Trends

	require.Len(t, trends, 30)
	assert.Equal(t, "2025-05-02", trends[0].Date)
	assert.Equal(t, "2025-05-31", trends[29].Date)
	for i := 1; i < len(trends); i++ {
		assert.Less(t, trends[i-1].Date, trends[i].Date)
	}
}
