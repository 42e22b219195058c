package middleware

import (
	"strconv"
	"time"

	"pharmacy-chatbot-backend/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency, labelled by route template
// so path parameters do not blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.HTTPRequestInFlight.Inc()
		defer metrics.HTTPRequestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestTotals.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
