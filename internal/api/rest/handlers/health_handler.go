package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Banner is the plain-text body of GET /
const Banner = "Servidor API Rest que manipula as rotas /produto e /cliente."

// Pinger проверяет доступность базы данных
type Pinger interface {
	Ping(ctx context.Context) error
}

// Root отвечает баннером сервиса
func Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// HealthCheck обработчик для проверки работоспособности сервиса
func HealthCheck(db Pinger, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Errorw("Health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "UNAVAILABLE",
				"time":   time.Now().Format(time.RFC3339),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
