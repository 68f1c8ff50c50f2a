package main

// @title Donor Matching Service API
// @version 1.0.0
// @description Подбор ближайших доноров крови, банков крови и поставщиков кислорода по координатам искателя.
// @description
// @description Основные возможности:
// @description - Поиск доступных доноров нужной группы вместе с банками крови, где эта группа есть в запасе
// @description - Поиск поставщиков кислорода по удалённости
// @description - Каталог банков крови и проверка наличия крови по группе

// @contact.name API Support
// @contact.email support@donor-matching.local

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

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/donor-matching-service/docs"
	"github.com/donor-matching-service/internal/app"
	"github.com/donor-matching-service/internal/config"
	httpDelivery "github.com/donor-matching-service/internal/delivery/http"
	"github.com/donor-matching-service/internal/delivery/http/handler"
	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/pkg/logger"
	"github.com/donor-matching-service/internal/pkg/metrics"
	"github.com/donor-matching-service/internal/repository/cache"
	"github.com/donor-matching-service/internal/usecase"
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

	log.Info("Starting Donor Matching Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.Bool("development", cfg.IsDevelopment()),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Float64("default_radius_km", cfg.Matching.DefaultRadiusKm),
	)

	// 3. Open candidate store (PostgreSQL or in-memory seed)
	repos, err := app.OpenRepositories(cfg, log)
	if err != nil {
		log.Fatal("Failed to open candidate store", zap.Error(err))
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Error("Failed to close candidate store", zap.Error(err))
		}
	}()

	// 4. Connect to Redis; без Redis в memory-режиме работаем без кеша
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	switch {
	case err == nil:
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	case cfg.Store.Driver == config.StoreDriverMemory:
		log.Warn("Redis unavailable, search cache disabled",
			zap.String("addr", cfg.GetRedisAddr()),
			zap.Error(err))
	default:
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := repos.Health(ctx); err != nil {
		log.Fatal("Candidate store health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Metrics
	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	// 7. Initialize Use Cases
	matchUC := app.NewMatchUseCase(cfg, repos, cacheRepo, collector, log)
	bloodBankUC := usecase.NewBloodBankUseCase(repos.BloodBanks, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	matchHandler := handler.NewMatchHandler(matchUC, log)
	bloodBankHandler := handler.NewBloodBankHandler(bloodBankUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, collector, matchHandler, bloodBankHandler)

	// 10. Start server in goroutine
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
