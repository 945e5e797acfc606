package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CatalogSourceRemote  = "remote"
	CatalogSourceDefault = "default"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// CatalogLoadsTotal counts catalog reads by the source that served them
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Catalog loads by source (remote or default)",
		},
		[]string{"source"},
	)

	// CatalogCommitsTotal counts remote catalog writes by outcome
	CatalogCommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_commits_total",
			Help: "Remote catalog writes by outcome",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)

	// CouponEvaluationsTotal counts coupon evaluations by outcome
	CouponEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_evaluations_total",
			Help: "Coupon evaluations by outcome (applied or rejection reason)",
		},
		[]string{"outcome"},
	)

	// CheckoutsTotal counts hand-off links generated
	CheckoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Orders formatted and handed off",
		},
	)

	// ImagesUploadedTotal counts images stored, by whether they were downscaled
	ImagesUploadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "images_uploaded_total",
			Help: "Menu images uploaded",
		},
		[]string{"resized"},
	)
)

// PrometheusMiddleware records request count and latency per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
