package app

import (
	"context"

	bankrollhttp "github.com/saradorri/pokerbankroll/internal/http"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	h bankrollhttp.Handlers,
	jwtService auth.JWTService,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) (*bankrollhttp.Server, error) {
	return bankrollhttp.NewServer(jwtService, h, errorHandler, log, bankrollhttp.Options{
		Address:        a.config.GetServerAddress(),
		ReadTimeout:    a.config.Server.ReadTimeout,
		RequestTimeout: a.config.Server.RequestTimeout,
	})
}

// StartHTTPServer ties the listener to the fx lifecycle
func (a *application) StartHTTPServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *bankrollhttp.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return srv.Shutdown(ctx)
		},
	})
}
