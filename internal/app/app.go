package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"crud_api/internal/config"
	"crud_api/internal/queue"
	"crud_api/internal/sse"
	"crud_api/internal/telemetry"
)

type App struct {
	cfg      *config.Config
	hub      *sse.Hub
	consumer queue.Consumer
	pub      queue.Publisher
	server   *http.Server
	logger   *zap.Logger
	wg       sync.WaitGroup

	shutdownTracing func(context.Context) error
}

func NewApp(cfg *config.Config, hub *sse.Hub, consumer queue.Consumer, publisher queue.Publisher, router *gin.Engine, logger *zap.Logger) *App {
	return &App{
		cfg:      cfg,
		hub:      hub,
		consumer: consumer,
		pub:      publisher,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger:          logger,
		shutdownTracing: func(context.Context) error { return nil },
	}
}

// Run starts tracing, the log stream hub and the queue consumer, then
// serves HTTP until the server is shut down.
func (a *App) Run(ctx context.Context) error {
	shutdownTracing, err := telemetry.Init(ctx, a.cfg)
	if err != nil {
		a.logger.Warn("tracing disabled", zap.Error(err))
	} else {
		a.shutdownTracing = shutdownTracing
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.server.BaseContext = func(net.Listener) context.Context { return ctx }

	a.logger.Info("http server listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("api_prefix", a.cfg.APIPrefix),
	)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if closer, ok := a.pub.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				a.logger.Warn("publisher close failed", zap.Error(err))
			}
		}
		if err := a.shutdownTracing(ctx); err != nil {
			a.logger.Warn("tracing shutdown failed", zap.Error(err))
		}
		a.logger.Info("graceful shutdown completed")
		return shutdownErr
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
