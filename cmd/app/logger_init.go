package main

import (
	"github.com/wagerworks/parimutuel/internal/config"
	"github.com/wagerworks/parimutuel/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.ProductionConfig()
	loggerConfig.Level = cfg.LogLevel

	logger.Init(loggerConfig)
}
