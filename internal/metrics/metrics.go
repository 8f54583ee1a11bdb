package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pg_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pg_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TenantsOnboarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_tenants_onboarded_total",
			Help: "Number of tenants onboarded since start",
		},
	)

	RentPaymentsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_rent_payments_total",
			Help: "Number of rent payments recorded since start",
		},
	)

	ComplaintsRaised = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_complaints_raised_total",
			Help: "Number of complaints raised since start",
		},
	)
)
