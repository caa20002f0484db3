package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/config"
	"github.com/geoid-microservice/internal/domain/repository"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/pkg/geoid"
	"github.com/geoid-microservice/internal/pkg/logger"
	"github.com/geoid-microservice/internal/repository/cache"
	redisRepo "github.com/geoid-microservice/internal/repository/redis"
	"github.com/geoid-microservice/internal/usecase"
	"github.com/geoid-microservice/internal/worker"
	"github.com/geoid-microservice/internal/worker/geo"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geo Resolve Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	if err := geoid.Validate(); err != nil {
		log.Fatal("Geographic tables are inconsistent", zap.Error(err))
	}

	// 3. Connect to Redis Streams
	streamsClient, err := cache.NewRedisStreams(&cfg.RedisStreams, logger.Named(log, "redis-streams"))
	if err != nil {
		log.Fatal("Failed to connect to Redis Streams", zap.Error(err))
	}
	defer func() {
		if err := streamsClient.Close(); err != nil {
			log.Error("Failed to close Redis Streams connection", zap.Error(err))
		}
	}()

	// 4. Resolution stats (optional)
	var statsRepo repository.StatsRepository
	if cfg.Stats.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, logger.Named(log, "redis"))
		if err != nil {
			log.Warn("Redis unavailable, resolution stats disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			statsRepo = cache.NewStatsRepository(redisClient, cfg.Stats.KeyPrefix)
		}
	}

	// 5. Initialize repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(streamsClient, logger.Named(log, "streams"))
	geoUC := usecase.NewGeoUseCase(statsRepo, cfg.Stats.TopIDsLimit, metrics.SourceStream, logger.Named(log, "geo"))

	// 6. Initialize workers
	resolveWorker := geo.NewResolveWorker(streamRepo, geoUC, geo.Config{
		ConsumerGroup: cfg.Worker.ConsumerGroup,
		BatchSize:     cfg.Worker.BatchSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}, log)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(resolveWorker)

	// 7. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	counters := resolveWorker.Counters()
	log.Info("Worker shutdown complete",
		zap.Int64("processed", counters.Processed),
		zap.Int64("published", counters.Published),
		zap.Int64("malformed", counters.Malformed),
		zap.Int64("failed", counters.Failed))
}
