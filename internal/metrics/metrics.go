package metrics

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"method", "route"},
	)

	// Business metrics
	contactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"result"}, // accepted, rejected
	)

	maintenanceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_requests_total",
			Help: "Total number of maintenance scheduling requests",
		},
		[]string{"result"}, // scheduled, rejected, failed
	)

	// Read at scrape time so the value always matches the store.
	_ = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "maintenance_items",
			Help: "Number of items currently on the maintenance board",
		},
		func() float64 {
			if count, ok := maintenanceItemsSource.Load().(func() int); ok {
				return float64(count())
			}
			return 0
		},
	)

	maintenanceItemsSource atomic.Value // func() int
)

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// PrometheusMiddleware records request count, latency and response size.
// Requests are labelled by the mux route pattern to keep cardinality bounded.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(wrapped.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(r.Method, route).Observe(float64(wrapped.size))
	})
}

// responseWriter captures status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

// RecordContactSubmission counts a contact form submission.
func RecordContactSubmission(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	contactSubmissionsTotal.WithLabelValues(result).Inc()
}

// RecordMaintenanceRequest counts a maintenance request by outcome.
func RecordMaintenanceRequest(result string) {
	maintenanceRequestsTotal.WithLabelValues(result).Inc()
}

// ObserveMaintenanceItems sets the function the maintenance_items gauge
// reports from.
func ObserveMaintenanceItems(count func() int) {
	maintenanceItemsSource.Store(count)
}
