package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/config"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/factory"
	redisstorage "github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Build factory config from the environment
	factoryCfg := factory.Config{
		Handles:       cfg.PlayerNames,
		FaceitAPIKey:  cfg.FaceitAPIKey,
		FaceitBaseURL: cfg.FaceitBaseURL,
		Logger:        logger,
		StorageType:   cfg.StorageType,
	}

	if factoryCfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.FaceitAPIKey == "" {
		logger.Warn("FACEIT_API_KEY not set; profile lookups will be unauthenticated")
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		RosterService:     app.RosterService,
		LedgerService:     app.LedgerService,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.Int("roster_size", len(cfg.PlayerNames)))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
