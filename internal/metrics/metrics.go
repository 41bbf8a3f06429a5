package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the booking API.
type Metrics struct {
	ReservationsCreated   prometheus.Counter
	ReservationConflicts  prometheus.Counter
	ReservationsCancelled prometheus.Counter

	AvailabilityCacheHits   prometheus.Counter
	AvailabilityCacheMisses prometheus.Counter

	NotificationFailures prometheus.Counter
}

func New(namespace string) *Metrics {
	return &Metrics{
		ReservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Total number of reservations admitted",
		}),
		ReservationConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_conflicts_total",
			Help:      "Total number of booking attempts rejected for overlap",
		}),
		ReservationsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_cancelled_total",
			Help:      "Total number of reservations cancelled",
		}),
		AvailabilityCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_hits_total",
			Help:      "Availability day views served from cache",
		}),
		AvailabilityCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_misses_total",
			Help:      "Availability day views computed from the store",
		}),
		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Email dispatches that failed (non-fatal to bookings)",
		}),
	}
}
