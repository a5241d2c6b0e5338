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

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/config"
	"github.com/courtside/totals-api/internal/handlers"
	"github.com/courtside/totals-api/internal/logic"
	"github.com/courtside/totals-api/internal/resolver"
	"github.com/courtside/totals-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pg.Close()

	// ClickHouse
	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		sugar.Fatalw("Failed to parse ClickHouse URL", "error", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
	}
	defer ch.Close()

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Failed to parse Redis URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	tuning := resolver.DefaultTuning()
	res := resolver.New(tuning, logger)

	provider := logic.NewStatsProvider(pg, ch, rdb, logger)
	prediction := logic.NewPredictionService(provider, res, cfg.RecentWindow, logger)

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:  cfg.SyncWorkerCount,
		QueueSize:    cfg.SyncQueueSize,
		SyncInterval: cfg.SyncInterval,
		Season:       cfg.Season,
		RecentWindow: cfg.RecentWindow,
		Provider:     provider,
		Pg:           pg,
		Redis:        rdb,
		Tuning:       tuning,
		Logger:       logger,
	})
	pool.Start(ctx)
	defer pool.Stop()

	h := handlers.New(handlers.Config{
		Postgres:   pg,
		ClickHouse: ch,
		Redis:      rdb,
		Logger:     logger,
		TierSync:   pool,
		Prediction: prediction,
		Stats:      provider,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
