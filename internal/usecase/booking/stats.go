package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/timezone"
)

const trendDays = 30

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type BarberRevenue struct {
	Name   string       `json:"name"`
	Total  float64      `json:"total"`
	Trends []TrendPoint `json:"trends"`
}

type Stats struct {
	TotalBookings    int                      `json:"totalBookings"`
	BookingsByStatus []StatusCount            `json:"bookingsByStatus"`
	TodayBookings    int                      `json:"todayBookings"`
	TotalRevenue     float64                  `json:"totalRevenue"`
	RevenueByBarber  map[string]BarberRevenue `json:"revenueByBarber"`
}

type GetStats struct {
	repo domain.Repository
	ref  reference.Repository
	now  func() time.Time
}

func NewGetStats(repo domain.Repository, ref reference.Repository, now func() time.Time) *GetStats {
	return &GetStats{repo: repo, ref: ref, now: now}
}

// Execute aggregates in memory over every booking in the staff scope.
// Revenue ignores cancelled bookings.
func (uc *GetStats) Execute(ctx context.Context, scope domain.StaffScope) (*Stats, error) {
	list, err := uc.repo.List(ctx, domain.Filter{BarberID: scope.Barber()})
	if err != nil {
		return nil, err
	}

	barbers, err := uc.ref.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate(list, barbers, timezone.FormatDate(uc.now())), nil
}

func aggregate(list []models.Booking, barbers []models.Barber, today string) *Stats {
	stats := &Stats{
		TotalBookings:    len(list),
		BookingsByStatus: []StatusCount{},
		RevenueByBarber:  map[string]BarberRevenue{},
	}

	names := map[models.BarberID]string{}
	for _, b := range barbers {
		names[b.ID] = b.Name
	}

	byStatus := map[string]int{}
	totals := map[models.BarberID]float64{}
	daily := map[models.BarberID]map[string]float64{}

	for _, b := range list {
		st, err := domain.ParseStatus(b.Status)
		if err != nil {
			// legacy rows without a known status count as pending
			st = domain.StatusPending
		}
		byStatus[string(st)]++

		if b.AppointmentDate == today {
			stats.TodayBookings++
		}

		if domain.Status(b.Status) == domain.StatusCancelled || b.ServicePrice <= 0 {
			continue
		}

		stats.TotalRevenue += b.ServicePrice
		totals[b.BarberID] += b.ServicePrice

		if daily[b.BarberID] == nil {
			daily[b.BarberID] = map[string]float64{}
		}
		daily[b.BarberID][b.AppointmentDate] += b.ServicePrice

		if _, ok := names[b.BarberID]; !ok && b.BarberName != "" {
			names[b.BarberID] = b.BarberName
		}
	}

	for _, st := range domain.AllStatuses() {
		if n, ok := byStatus[string(st)]; ok {
			stats.BookingsByStatus = append(stats.BookingsByStatus, StatusCount{Status: string(st), Count: n})
		}
	}

	for id, name := range names {
		stats.RevenueByBarber[id.String()] = BarberRevenue{
			Name:   name,
			Total:  totals[id],
			Trends: trend(daily[id]),
		}
	}

	return stats
}

// trend sorts daily revenue by date and keeps the most recent days.
func trend(daily map[string]float64) []TrendPoint {
	out := make([]TrendPoint, 0, len(daily))
	for date, revenue := range daily {
		out = append(out, TrendPoint{Date: date, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if len(out) > trendDays {
		out = out[len(out)-trendDays:]
	}
	return out
}
