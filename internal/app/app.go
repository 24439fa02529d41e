package app

import (
	"context"
	"time"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/config"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/api/rest"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/repository/postgres"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const poolMetricsInterval = 15 * time.Second

// App представляет собой контейнер для всех компонентов приложения
type App struct {
	Config      *config.Config
	Pool        *pgxpool.Pool
	Registry    *prometheus.Registry
	PoolMetrics metrics.PoolMetrics
	Router      *gin.Engine
	Server      *rest.Server
	Logger      *logger.Logger
}

// NewApp создает и инициализирует новый экземпляр приложения. The connection pool
// built here is the only one in the process.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	// Инициализация Prometheus
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	apiMetrics := metrics.NewAPIMetrics(registry)

	pool, err := postgres.NewConnection(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	log.Info("Conexão estabelecida com sucesso com o banco de dados")

	poolMetrics := metrics.NewPoolMetrics(registry, postgres.PoolStats(pool), log)

	gin.SetMode(cfg.Server.Mode)
	router := rest.SetupRouter(log, registry, rest.Dependencies{
		Clientes: postgres.NewClienteRepository(pool, log),
		Produtos: postgres.NewProdutoRepository(pool, log),
		DB:       pool,
		Metrics:  apiMetrics,
	})

	return &App{
		Config:      cfg,
		Pool:        pool,
		Registry:    registry,
		PoolMetrics: poolMetrics,
		Router:      router,
		Server:      rest.NewServer(router, cfg, log),
		Logger:      log,
	}, nil
}

// Run starts pool metrics and serves HTTP until the server stops
func (a *App) Run() error {
	a.PoolMetrics.StartRecording(poolMetricsInterval)
	return a.Server.Start()
}

// Shutdown stops the server, then releases the pool
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	a.PoolMetrics.Stop()
	a.Pool.Close()
	return err
}
