package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/database"
	httpdelivery "shortlink/internal/delivery/http"
	"shortlink/internal/fraud"
	"shortlink/internal/repository/cache"
	"shortlink/internal/repository/sqlite"
	"shortlink/internal/usecase"

	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logger.Fatal("failed to create data directory", zap.Error(err))
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database initialized", zap.String("path", cfg.DatabasePath))

	// Redis is optional; without it lookups go straight to sqlite.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unavailable, running without link cache", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
		cancel()
	}

	links := cache.NewCachedLinkRepository(
		sqlite.NewLinkRepository(db),
		cache.NewRedisLinkCache(rdb, logger),
	)
	clicks := sqlite.NewClickRepository(db)
	checker := fraud.NewSimulatedChecker(cfg.FraudDelay)

	service := usecase.NewLinkService(links, clicks, checker, logger, cfg.BaseURL)
	handler := httpdelivery.NewHandler(service, logger, db)
	router := httpdelivery.NewRouter(handler, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("base_url", cfg.BaseURL),
			zap.Duration("fraud_delay", cfg.FraudDelay),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
