package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rental_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RentalsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_rentals_created_total",
			Help: "Total number of rentals created",
		},
	)

	BookingConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_booking_conflicts_total",
			Help: "Total number of rental requests rejected for date overlap",
		},
	)
)
