package main

import (
	"os"

	"github.com/raimannma/deadlock-assets-api/internal/config"
	"github.com/raimannma/deadlock-assets-api/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) (*os.File, error) {
	// Source locations only help in dev builds
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	return logger.InitLoggerWithFile(loggerConfig, cfg.LogDir)
}
