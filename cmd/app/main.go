package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raimannma/deadlock-assets-api/internal/assets"
	"github.com/raimannma/deadlock-assets-api/internal/config"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
	"github.com/raimannma/deadlock-assets-api/internal/registry"
	"github.com/raimannma/deadlock-assets-api/internal/server"
	"github.com/raimannma/deadlock-assets-api/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logFile.Close()

	slog.Info("Starting deadlock-assets-api",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"builds_dir", cfg.BuildsDir,
		"port", cfg.Port)

	schemaValidator := validation.NewSchemaValidator()
	if err := schemaValidator.ValidateFile(cfg.HeroNamesPath, cfg.HeroNamesSchemaPath); err != nil {
		slog.Error("Hero names config failed schema validation", "path", cfg.HeroNamesPath, "error", err)
		os.Exit(1)
	}

	heroNames, err := rawdata.LoadHeroNames(cfg.HeroNamesPath)
	if err != nil {
		slog.Error("Failed to load hero names", "path", cfg.HeroNamesPath, "error", err)
		os.Exit(1)
	}

	norm := assets.NewNormalizer(cfg.ImageBaseURL, cfg.VideoBaseURL)

	reg, err := registry.NewRegistry(cfg.BuildsDir, heroNames, norm, slog.Default())
	if err != nil {
		slog.Error("Failed to create build registry", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the latest build so the first request does not pay the decode cost.
	if err := reg.Bootstrap(ctx); err != nil {
		slog.Error("Failed to bootstrap build registry", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, reg)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
