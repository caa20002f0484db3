package main

// @title Geographic Identifier Service API
// @version 1.0.0
// @description Разрешение французских административных выборов в числовые идентификаторы и обратно.
// @description
// @description Уровни и диапазоны идентификаторов:
// @description - pays: 0
// @description - region: 1000-1999
// @description - departement: 2000-2999
// @description - intercommunalite: 3000-3999
// @description - commune: от 10000

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geoid-microservice/docs/swagger"
	"github.com/geoid-microservice/internal/config"
	httpDelivery "github.com/geoid-microservice/internal/delivery/http"
	"github.com/geoid-microservice/internal/delivery/http/handler"
	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/pkg/geoid"
	"github.com/geoid-microservice/internal/pkg/logger"
	"github.com/geoid-microservice/internal/repository/cache"
	"github.com/geoid-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geographic Identifier Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("stats_enabled", cfg.Stats.Enabled),
	)

	// 3. Validate compiled-in tables
	if err := geoid.Validate(); err != nil {
		log.Fatal("Geographic tables are inconsistent", zap.Error(err))
	}

	// 4. Connect to Redis for resolution stats (optional)
	var statsRepo repository.StatsRepository
	var redisClient *cache.Redis
	if cfg.Stats.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, logger.Named(log, "redis"))
		if err != nil {
			log.Warn("Redis unavailable, resolution stats disabled", zap.Error(err))
		} else {
			statsRepo = cache.NewStatsRepository(redisClient, cfg.Stats.KeyPrefix)
			log.Info("Resolution stats enabled", zap.String("key_prefix", cfg.Stats.KeyPrefix))
		}
	}

	// 5. Initialize use cases
	geoUC := usecase.NewGeoUseCase(statsRepo, cfg.Stats.TopIDsLimit, metrics.SourceHTTP, logger.Named(log, "geo"))

	// 6. Initialize HTTP handlers and server
	geoHandler := handler.NewGeoHandler(geoUC, cfg.Server.BatchLimit, log)
	statsHandler := handler.NewStatsHandler(geoUC, log)
	healthHandler := handler.NewHealthHandler(log)
	if statsRepo != nil {
		healthHandler.Register("redis", redisClient)
	}

	server := httpDelivery.NewServer(cfg, logger.Named(log, "http"), geoHandler, statsHandler, healthHandler)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
