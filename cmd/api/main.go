package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/common/version"
	"go.uber.org/zap"

	leaderboardsvc "github.com/rescuegrid/highscore/src/app/leaderboard"
	leaderboardinfra "github.com/rescuegrid/highscore/src/infra/leaderboard"
	"github.com/rescuegrid/highscore/src/infra/logging"
)

func main() {
	cfg, err := loadConfig(os.Getenv("HIGHSCORE_CONFIG"), nil)
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	baseCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	shutdownTelemetry, err := setupTelemetry(baseCtx, cfg.Telemetry)
	if err != nil {
		logger.Warn("failed to initialize telemetry", zap.Error(err))
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTelemetry(ctx)
		}()
	}

	leaderboardRepo := leaderboardinfra.NewMemoryRepository()
	leaderboardService := leaderboardsvc.NewService(leaderboardRepo)

	server := NewServer(ServerConfig{
		Logger:             logger,
		LeaderboardService: leaderboardService,
		Evicted:            leaderboardRepo.Evicted,
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("highscore API listening",
			zap.String("addr", cfg.HTTPAddress),
			zap.String("build", version.Info()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-baseCtx.Done()
	server.Drain()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
