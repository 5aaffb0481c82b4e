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

	"github.com/osse101/PrizeDraw_Go/internal/bootstrap"
	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/server"
	"github.com/osse101/PrizeDraw_Go/internal/sse"
)

const shutdownTimeout = 10 * time.Second

// @title           PrizeDraw API
// @version         1.0
// @description     Runs a live prize-drawing ceremony: roster and prize tiers, rolling preview, committed winners.
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "prize draw failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// An outdated .env still boots, but the operator should hear about it
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		logger.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		logger.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithSessionKey(ctx, cfg.SessionKey)

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()

	hub := sse.NewHub()
	hub.Start()

	handlers, err := bootstrap.RegisterEventHandlers(ctx, cfg, bus, hub)
	if err != nil {
		hub.Stop()
		_ = storage.Close(context.Background())
		return err
	}

	ctrl, err := bootstrap.NewController(ctx, cfg, storage.Store, bus)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Handlers: handlers,
			Hub:      hub,
			Storage:  storage,
		})
		return err
	}

	if err := bootstrap.SeedSession(ctx, cfg, ctrl); err != nil {
		// A bad seed file leaves the session empty but usable from the API
		logger.Error("Session seeding failed", "error", err)
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		ServiceName:     cfg.ServiceName,
		Version:         cfg.Version,
	}, ctrl, hub, storage.Backends)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Controller: ctrl,
		Handlers:   handlers,
		Hub:        hub,
		Storage:    storage,
	})

	return err
}
