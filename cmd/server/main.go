package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saunova/saunova-server/internal/achievement"
	"github.com/saunova/saunova-server/internal/api"
	"github.com/saunova/saunova-server/internal/auth"
	"github.com/saunova/saunova-server/internal/bridge"
	"github.com/saunova/saunova-server/internal/config"
	"github.com/saunova/saunova-server/internal/repository/postgres"
	"github.com/saunova/saunova-server/internal/service"
	"github.com/saunova/saunova-server/internal/social"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Database connection failure is fatal; nothing works without the store.
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	repos := postgres.NewRepositories(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize token verifier", zap.Error(err))
	}

	// Bridge availability is best-effort: the monitor starts alongside the
	// server and a down bridge never blocks startup.
	bridgeClient := bridge.NewClient(cfg.BridgeURL, logger)
	health := bridge.NewHealthMonitor(bridgeClient, cfg.BridgeHealthInterval, logger)
	go health.Run(ctx)

	badges := achievement.NewStaticProvider()
	friends := social.NewMockProvider(badges)
	services := service.NewServices(repos, badges, friends)

	router := api.NewRouter(services, repos, bridgeClient, health, verifier, logger)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newVerifier(ctx context.Context, cfg *config.Config) (auth.TokenVerifier, error) {
	if cfg.AuthJWKSURL != "" {
		return auth.NewJWKSVerifier(ctx, cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience)
	}
	return auth.NewLocalVerifier(cfg.AuthLocalSecret), nil
}
