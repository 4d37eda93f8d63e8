package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/metrics"
)

// RequestMetrics observes request duration per method, route and status.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			// unmatched route; avoid a label per raw URL
			path = "unmatched"
		}

		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
