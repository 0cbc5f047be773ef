package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
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
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Business metrics
	applicationsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wrap_applications_received_total",
			Help: "Total number of wrap applications received",
		},
	)

	notificationEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Total number of notification email dispatch attempts",
		},
		[]string{"status"}, // success, failure
	)
)

// RecordApplicationReceived counts one application entering the pipeline
func RecordApplicationReceived() {
	applicationsReceivedTotal.Inc()
}

// RecordNotificationEmail counts one dispatch attempt by terminal status
func RecordNotificationEmail(status string) {
	notificationEmailsTotal.WithLabelValues(status).Inc()
}

// Middleware records request counts and latencies per route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint itself
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, statusCode).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus exposition endpoint
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
