// Package metrics exposes Prometheus instrumentation for the HTTP
// service and the ephemeris engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "almagest_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "almagest_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	lightTimeIterations = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "almagest_light_time_iterations",
			Help:    "Iterations needed by the light-travel time solver.",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
		},
	)

	searchIterationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "almagest_search_iterations_total",
			Help: "Total iterations spent in event search solvers.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(lightTimeIterations)
	prometheus.MustRegister(searchIterationsTotal)
}

// RecordLightTime records how many iterations the light-travel time
// solver used for one geocentric position.
func RecordLightTime(iterations int) {
	lightTimeIterations.Observe(float64(iterations))
}

// RecordSearch adds iterations spent in the named event solver.
func RecordSearch(kind string, iterations int) {
	searchIterationsTotal.WithLabelValues(kind).Add(float64(iterations))
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// knownRoutes are the exact paths served by the API. Anything else is
// collapsed into a single label to keep metric cardinality bounded.
var knownRoutes = map[string]bool{
	"/":                 true,
	"/healthz":          true,
	"/readyz":           true,
	"/metrics":          true,
	"/api/v1/position":  true,
	"/api/v1/horizon":   true,
	"/api/v1/moonphase": true,
	"/api/v1/seasons":   true,
}

func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
