package middleware

import (
	"strconv"
	"time"

	"payment-intention-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency labelled by the matched route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
