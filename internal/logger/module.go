package logger

import (
	"log/slog"

	"github.com/polkiloo/servicebooking/internal/config"
	"go.uber.org/fx"
)

// Module provides application logger for fx graphs.
var Module = fx.Provide(func(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
})
