package rest

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/api/rest/handlers"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/api/rest/middleware"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/repository"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Clientes repository.ClienteRepository
	Produtos repository.ProdutoRepository
	DB       handlers.Pinger
	Metrics  *metrics.APIMetrics
}

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, deps Dependencies) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.LoggerMiddleware(log))
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	r.Use(gin.Recovery())

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck(deps.DB, log))

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	clienteHandler := handlers.NewClienteHandler(deps.Clientes, deps.Metrics, log)
	produtoHandler := handlers.NewProdutoHandler(deps.Produtos, deps.Metrics, log)

	clienteHandler.Register(r.Group("/cliente"))
	produtoHandler.Register(r.Group("/produto"))

	return r
}
