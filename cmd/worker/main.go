package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/app"
	"github.com/donor-matching-service/internal/config"
	"github.com/donor-matching-service/internal/pkg/logger"
	"github.com/donor-matching-service/internal/pkg/metrics"
	"github.com/donor-matching-service/internal/repository/cache"
	redisRepo "github.com/donor-matching-service/internal/repository/redis"
	"github.com/donor-matching-service/internal/worker"
	"github.com/donor-matching-service/internal/worker/request"
)

// metricsAddr - отдельный порт /metrics у воркера, HTTP API у него нет
const metricsAddr = ":9091"

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

	log.Info("Starting Blood Request Matching Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", cfg.Worker.ConsumerName),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("store_driver", cfg.Store.Driver))

	// 3. Open candidate store
	repos, err := app.OpenRepositories(cfg, log)
	if err != nil {
		log.Fatal("Failed to open candidate store", zap.Error(err))
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Error("Failed to close candidate store", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Metrics
	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}
	metricsServer := &http.Server{Addr: metricsAddr, Handler: collector.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server failed", zap.Error(err))
		}
	}()

	// 6. Initialize repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	matchUC := app.NewMatchUseCase(cfg, repos, nil, collector, log)

	// 7. Initialize workers
	matchingWorker := request.NewMatchingWorker(streamRepo, matchUC, collector, request.Config{
		ConsumerGroup:   cfg.Worker.ConsumerGroup,
		ConsumerName:    cfg.Worker.ConsumerName,
		BatchSize:       cfg.Worker.BatchSize,
		EmptyQueueSleep: cfg.Worker.EmptyQueueSleep,
		MaxRetries:      cfg.Worker.MaxRetries,
		ClaimIdle:       cfg.Worker.ClaimIdle,
	}, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(matchingWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info("Received shutdown signal")
	case <-workerManager.Done():
		log.Warn("All workers exited")
	}

	// Сначала дожидаемся текущих пакетов, потом отменяем контекст
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
