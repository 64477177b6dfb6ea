package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/adapter/notify"
	"github.com/polkiloo/servicebooking/internal/config"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
	"github.com/polkiloo/servicebooking/internal/usecase"
	"github.com/polkiloo/servicebooking/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewBookingFacade,
		newHTTPServer,
		newNotificationDispatcher,
		func(s repository.Store) HealthChecker { return s },
		func(d *worker.NotificationDispatcher) usecase.NotificationQueue { return d },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Notifier notify.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newNotificationDispatcher(p dispatcherParams) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(
		p.Notifier,
		p.Config.Notify.Workers,
		p.Config.Notify.QueueSize,
		p.Config.Notify.Timeout,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.NotificationDispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting servicebooking", slog.String("addr", p.Server.Addr))
			// The start context expires once startup completes.
			p.Dispatcher.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Dispatcher.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("servicebooking stopped")
			return nil
		},
	})
}
