package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/adapter/notify"
	"github.com/polkiloo/servicebooking/internal/app"
	"github.com/polkiloo/servicebooking/internal/config"
	"github.com/polkiloo/servicebooking/internal/logger"
	"github.com/polkiloo/servicebooking/internal/pkg/auth"
	"github.com/polkiloo/servicebooking/internal/server/http/handlers"
	"github.com/polkiloo/servicebooking/internal/server/http/router"
	"github.com/polkiloo/servicebooking/internal/storage"
	"github.com/polkiloo/servicebooking/internal/usecase"
)

// Module assembles the application graph. Extra options are appended last,
// so tests can fx.Replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		// notify registers its close hook before app, so it runs after the
		// dispatcher has drained.
		notify.Module,
		usecase.Module,
		fx.Provide(func(f *app.BookingFacade) handlers.BookingFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
