package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "securedash_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "securedash_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	authOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "securedash_auth_outcomes_total",
		Help: "Authentication attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, authOutcomes)
}

// RecordAuthOutcome counts one login/signup attempt. Outcome is a coarse
// label (success, invalid_credentials, user_not_found, ...), never an
// identity.
func RecordAuthOutcome(operation, outcome string) {
	authOutcomes.WithLabelValues(operation, outcome).Inc()
}

// PrometheusMiddleware records request counts and latency per route. The
// route template (not the raw path) is used as the label to keep
// cardinality bounded.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
