package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsCreated  prometheus.Counter
	SlotConflicts    prometheus.Counter
	DeviceLimited    prometheus.Counter
	AutoCompleted    prometheus.Counter
	RetentionDeleted prometheus.Counter
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	BackgroundErrors *prometheus.CounterVec
}

// New registers the metrics on reg. Tests pass a fresh registry so repeated
// construction does not panic on duplicate registration.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		SlotConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_slot_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken",
		}),
		DeviceLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_device_limited_total",
			Help:      "Booking attempts rejected by the device limiter",
		}),
		AutoCompleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_auto_completed_total",
			Help:      "Confirmed bookings promoted to completed after their time passed",
		}),
		RetentionDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_retention_deleted_total",
			Help:      "Bookings removed by the retention sweep",
		}),
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BackgroundErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "background_job_errors_total",
			Help:      "Failures of scheduled jobs",
		}, []string{"job"}),
	}
}

// NewNop builds metrics on a private registry.
func NewNop() *Metrics {
	return New("test", prometheus.NewRegistry())
}
