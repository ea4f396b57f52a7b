package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PoE2Craft_Go/internal/bootstrap"
	"github.com/osse101/PoE2Craft_Go/internal/config"
	"github.com/osse101/PoE2Craft_Go/internal/database"
	"github.com/osse101/PoE2Craft_Go/internal/server"
)

// @title PoE2 Crafting Engine API
// @version 1.0
// @description Applies Path of Exile 2 currencies and omens to items and simulates crafting outcomes.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	for _, warning := range cfg.Warnings() {
		slog.Warn(warning)
	}
	if err := config.ValidateEnv(); err != nil {
		slog.Warn("Environment check", "error", err)
	}

	ctx := context.Background()

	engine, err := bootstrap.BuildEngine(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	recorder, dbPool, err := bootstrap.SetupHistory(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	deps := server.Deps{
		Crafting:  engine.Crafting,
		Items:     engine.Catalog,
		Simulator: engine.Simulator,
		History:   recorder,
	}
	// Keep the interface nil when there is no pool
	if dbPool != nil {
		deps.DBPool = database.Pool(dbPool)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, deps)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		History: recorder,
		DBPool:  dbPool,
	})
}
