package bootstrap

import (
	"log/slog"

	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
)

// InitLogger installs the process logger from the application config and
// reports any configuration warnings through it.
func InitLogger(cfg *config.Config) *slog.Logger {
	// source locations only in dev
	addSource := cfg.Environment == "dev"

	log := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	log.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	log.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"storage_backend", cfg.StorageBackend,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		log.Warn(LogMsgConfigWarning, "warning", w)
	}
	return log
}
