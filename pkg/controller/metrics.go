package controller

import (
	"homoglyph/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute labels requests no ServeMux pattern matched, which keeps the
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPMetrics records request latencies and response sizes per route.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
	size     *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors with reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	labels := []string{"route", "method", "code"}
	factory := promauto.With(reg)

	return &HTTPMetrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method and status code.",
			Buckets: metrics.DefaultBuckets,
		}, labels),
		size: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP response bodies by route, method and status code.",
			Buckets: metrics.SizeBuckets,
		}, labels),
	}
}

// Middleware observes every request. It must wrap the ServeMux directly so
// the matched pattern is visible on the request after routing.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		code := strconv.Itoa(rec.status)
		m.duration.WithLabelValues(route, r.Method, code).Observe(time.Since(start).Seconds())
		m.size.WithLabelValues(route, r.Method, code).Observe(float64(rec.bytes))
	})
}
