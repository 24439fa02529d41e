package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/config"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/app"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
)

func main() {
	// Загрузка конфигурации (.env + окружение)
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.INFO).Fatal("Failed to load configuration: %v", err)
	}

	log := logger.New(logger.ParseLevel(cfg.Logging.Level))
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal("Erro ao conectar com o banco de dados: %v", err)
	}

	// Запуск сервера в горутине
	go func() {
		if err := application.Run(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := application.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}
