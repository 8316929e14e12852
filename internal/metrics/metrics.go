package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "propertysource"

var (
	once sync.Once

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Backend API calls by operation and HTTP status (0 for transport errors).",
		},
		[]string{"op", "code"},
	)

	backendLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Backend API call latency by operation.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	pageRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_requests_total",
			Help:      "Rendered page requests by route and status.",
		},
		[]string{"route", "code"},
	)

	bookingsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "Viewing booking submissions by outcome.",
		},
		[]string{"outcome"},
	)

	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Login and signup attempts by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Backend response cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(backendRequests, backendLatency, pageRequests, bookingsSubmitted, authAttempts, cacheLookups)
	})
}

func ObserveBackendRequest(op string, code int, elapsed time.Duration) {
	backendRequests.WithLabelValues(op, strconv.Itoa(code)).Inc()
	backendLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func IncPageRequest(route string, code int) {
	pageRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func IncBookingSubmitted(outcome string) {
	bookingsSubmitted.WithLabelValues(outcome).Inc()
}

func IncAuthAttempt(kind, outcome string) {
	authAttempts.WithLabelValues(kind, outcome).Inc()
}

func IncCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}
