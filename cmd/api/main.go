package main

// @title Trip Aggregator API
// @version 1.0.0
// @description Сервис расчёта поездок по Северному Минданао: геокодирование адресов, маршрут и время в пути, ориентировочный тариф (PHP) для jeepney, автобуса, такси и частной машины, а также погода, новости и места рядом с пунктом назначения.
// @description
// @description Основные возможности:
// @description - Расчёт поездки и тарифа по двум адресам
// @description - Резервный источник маршрута при сбое основного
// @description - Прямые запросы к геокодеру, погоде, новостям и местам
// @description - Хранение расчётов тарифа (CRUD)

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

	_ "github.com/trip-aggregator/docs"
	"github.com/trip-aggregator/internal/app"
	"github.com/trip-aggregator/internal/config"
	httpDelivery "github.com/trip-aggregator/internal/delivery/http"
	"github.com/trip-aggregator/internal/delivery/http/handler"
	"github.com/trip-aggregator/internal/delivery/http/middleware"
	"github.com/trip-aggregator/internal/domain/repository"
	"github.com/trip-aggregator/internal/infrastructure/kafka"
	"github.com/trip-aggregator/internal/pkg/logger"
	"github.com/trip-aggregator/internal/pkg/telemetry"
	"github.com/trip-aggregator/internal/repository/postgres"
	redisRepo "github.com/trip-aggregator/internal/repository/redis"
	"github.com/trip-aggregator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
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

	log.Info("Starting Trip Aggregator API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geocoder", cfg.Geocoder),
	)

	// 3. New Relic (nil без ключа)
	nrApp, err := telemetry.NewApplication(cfg.NewRelic, log)
	if err != nil {
		log.Fatal("Failed to start New Relic", zap.Error(err))
	}
	if nrApp != nil {
		defer nrApp.Shutdown(10 * time.Second)
	}

	// 4. PostgreSQL + migrations
	if err := postgres.Migrate(cfg.GetDatabaseURL(), cfg.Database.MigrationsPath, log); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Redis (health check; стримы использует worker)
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, nrApp, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Kafka publisher for fare record events
	var publisher repository.FareEventPublisher = kafka.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		kafkaPublisher, err := kafka.NewFareEventPublisher(cfg.Kafka, log)
		if err != nil {
			log.Fatal("Failed to create Kafka publisher", zap.Error(err))
		}
		publisher = kafkaPublisher
	} else {
		log.Info("Kafka not configured, fare record events are not published")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close Kafka publisher", zap.Error(err))
		}
	}()

	// 7. Repositories and providers
	fareRecordRepo := postgres.NewFareRecordRepository(db)
	corsOriginRepo := postgres.NewCORSOriginRepository(db)

	providers, err := app.NewProviders(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize providers", zap.Error(err))
	}

	// 8. Use cases
	tripAggregator := app.NewTripAggregator(cfg, providers, log)
	lookupUC := app.NewLookupUseCase(cfg, providers, log)
	fareRecordUC := usecase.NewFareRecordUseCase(fareRecordRepo, publisher, log)

	log.Info("Use cases initialized")

	// 9. CORS allowlist: конфиг + таблица cors_origins, обновляется в фоне
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	allowlist := middleware.NewOriginAllowlist(cfg.CORS.AllowedOrigins, corsOriginRepo, log)
	refreshCtx, refreshCancel := context.WithTimeout(ctx, 5*time.Second)
	_ = allowlist.Refresh(refreshCtx)
	refreshCancel()
	go allowlist.Run(ctx, cfg.CORS.RefreshInterval)

	// 10. HTTP server
	server := httpDelivery.NewServer(cfg, log, nrApp, allowlist, httpDelivery.Handlers{
		Trip:       handler.NewTripHandler(tripAggregator, log),
		FareRecord: handler.NewFareRecordHandler(fareRecordUC, log),
		Lookup:     handler.NewLookupHandler(lookupUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		}, log),
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
