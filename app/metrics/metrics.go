package metrics

import (
	"net/http"
	"strconv"
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
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Business logic metrics
	userSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_signups_total",
			Help: "Total number of user signups",
		},
	)

	userLoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of user logins",
		},
	)

	userLoginsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_failed_total",
			Help: "Total number of failed login attempts",
		},
	)

	authRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of requests rejected by the auth gate",
		},
	)

	jobsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobs_created_total",
			Help: "Total number of job listings created",
		},
	)
)

// RecordHTTPRequest records metrics for a completed HTTP request
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, endpoint, statusStr).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, statusStr).Observe(duration.Seconds())
}

func RecordSignup()        { userSignupsTotal.Inc() }
func RecordLogin()         { userLoginsTotal.Inc() }
func RecordLoginFailure()  { userLoginsFailed.Inc() }
func RecordAuthRejection() { authRejectionsTotal.Inc() }
func RecordJobCreated()    { jobsCreatedTotal.Inc() }

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
