package middleware

import (
	"strconv"
	"time"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware собирает метрики HTTP запросов
func MetricsMiddleware(m *metrics.APIMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
