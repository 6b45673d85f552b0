package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/app"
	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/pkg/logger"
	"github.com/trip-aggregator/internal/pkg/telemetry"
	redisRepo "github.com/trip-aggregator/internal/repository/redis"
	"github.com/trip-aggregator/internal/worker"
	"github.com/trip-aggregator/internal/worker/trip"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	log.Info("Starting trip compute worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("concurrency", cfg.Worker.Concurrency),
	)

	nrApp, err := telemetry.NewApplication(cfg.NewRelic, log)
	if err != nil {
		log.Fatal("Failed to start New Relic", zap.Error(err))
	}
	if nrApp != nil {
		defer nrApp.Shutdown(10 * time.Second)
	}

	// 3. Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, nrApp, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 4. Providers and aggregator
	providers, err := app.NewProviders(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize providers", zap.Error(err))
	}
	tripAggregator := app.NewTripAggregator(cfg, providers, log)

	// 5. Workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := worker.NewWorkerManager(cfg.Trip.Timeout+worker.DefaultShutdownTimeout, log)
	manager.Register(trip.NewComputeWorker(streamRepo, tripAggregator, cfg.Worker, log))

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Worker started successfully")

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker gracefully...")

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}
	cancel()

	log.Info("Worker stopped successfully")
}
