package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module loads configuration once per fx graph and reports the effective settings.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logEffective),
)

// logEffective never prints secrets or connection strings.
func logEffective(cfg *Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("address", cfg.RunAddress),
		slog.String("database", cfg.DatabaseDriver()),
		slog.String("log_level", cfg.LogLevel),
		slog.String("notifier", cfg.Notify.Provider),
		slog.Int("notify_workers", cfg.Notify.Workers),
	)
}
