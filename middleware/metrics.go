package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/metrics"
)

// Metrics records per-request counters and latency, labelled by the
// route template rather than the raw path to keep cardinality bounded.
func Metrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())

	metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
		Observe(time.Since(start).Seconds())
}
