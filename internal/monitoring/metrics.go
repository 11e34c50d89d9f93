package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business metrics
	ListingsCreated   prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	MessagesCreated   prometheus.Counter
	LoginAttempts     *prometheus.CounterVec
}

var metrics *Metrics

// Init initializes all Prometheus metrics
func Init() *Metrics {
	if metrics != nil {
		return metrics
	}

	metrics = &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		ListingsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "listings_created_total",
				Help: "Total number of listings submitted by agencies",
			},
		),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_status_transitions_total",
				Help: "Total number of listing status transitions by target status",
			},
			[]string{"status"},
		),
		MessagesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "contact_messages_total",
				Help: "Total number of visitor contact messages",
			},
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts by result",
			},
			[]string{"result"},
		),
	}

	return metrics
}

// Get returns the initialized metrics, or nil before Init.
func Get() *Metrics {
	return metrics
}

// MetricsMiddleware records HTTP metrics for each request
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()

		c.Next()

		metrics.HTTPRequestsInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
