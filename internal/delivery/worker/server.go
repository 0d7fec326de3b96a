// Package worker serves the consumers of collection change events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"hive/config"
	"hive/internal/delivery"
	"hive/internal/delivery/middleware"
	"hive/internal/delivery/worker/handler"
	"hive/internal/domain/lifecycle"
	"hive/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// pushServer receives Pub/Sub push deliveries. It also runs under the nats
// provider so the health probe stays the same.
type pushServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// NewEcho registers GET /health and POST /push.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Install(e, logger, cfg, "/health")

	provider := "noop"
	if cfg.PubSub != nil && cfg.PubSub.Provider != "" {
		provider = cfg.PubSub.Provider
	}
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "provider": provider})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}

func (s *pushServer) Serve(context.Context) error {
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
