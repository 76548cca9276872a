package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-home/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-home/internal/adapters/database"
	adapterHTTP "github.com/comitanigiacomo/kanso-home/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-home/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-home/internal/config"
	"github.com/comitanigiacomo/kanso-home/internal/core/services"
	"github.com/comitanigiacomo/kanso-home/internal/logger"
)

// @title                       Kanso Home API
// @version                     1.0
// @description                 Household chores, completion receipts and points statistics.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := run(); err != nil {
		logger.Error("critical server error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	logger.Info("connecting to database", "driver", cfg.Database.Driver)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, db)
	cancel()
	if err != nil {
		return err
	}

	logger.Info("database ready")

	var rdb *redis.Client
	if client, err := cache.NewRedisClient(cfg.Redis); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "error", err)
	} else {
		rdb = client
		defer rdb.Close()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, db, rdb, startTime),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("kanso home listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	logger.Info("stop signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers. rdb may be nil.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, startTime time.Time) *gin.Engine {
	userRepo := repository.NewSQLUserRepository(db)
	homeRepo := repository.NewSQLHomeRepository(db)
	taskRepo := repository.NewSQLTaskRepository(db)
	receiptRepo := repository.NewSQLReceiptRepository(db)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	homeService := services.NewHomeService(homeRepo)
	taskService := services.NewTaskService(taskRepo, receiptRepo, homeRepo)
	statsService := services.NewStatsService(repository.NewStatisticsStore(homeRepo, receiptRepo, taskRepo))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService),
		HomeHandler:     adapterHTTP.NewHomeHandler(homeService),
		TaskHandler:     adapterHTTP.NewTaskHandler(taskService),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService, homeService, cfg.StatsMaxRangeDays),
		TokenService:    tokenService,
		DB:              db,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		Registry:        registry,
		StartTime:       startTime,
	})
}
