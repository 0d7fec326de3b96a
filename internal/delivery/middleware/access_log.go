package middleware

import (
	"log/slog"
	"time"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// AccessLog writes one line per request through the request-scoped logger,
// so request_id and, once authenticated, user_id are attached. Successful
// requests are only logged in debug mode.
type AccessLog struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]bool
}

// NewAccessLog never logs the given routes, e.g. health probes.
func NewAccessLog(logger *slog.Logger, cfg *config.Config, skipRoutes ...string) *AccessLog {
	skip := make(map[string]bool, len(skipRoutes))
	for _, route := range skipRoutes {
		skip[route] = true
	}

	return &AccessLog{logger: logger, debug: cfg.Env.Debug, skip: skip}
}

func (a *AccessLog) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// The status is only known once the error handler has written it.
			c.Error(err)
		}

		if a.skip[c.Path()] {
			return nil
		}

		status := c.Response().Status
		level, ok := a.levelFor(status)
		if !ok {
			return nil
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("uri", req.URL.RequestURI()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
			slog.Int64("bytes_out", c.Response().Size),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		deliverycontext.LoggerOr(req.Context(), a.logger).LogAttrs(req.Context(), level, "HTTP Request", attrs...)

		return nil
	}
}

func (a *AccessLog) levelFor(status int) (slog.Level, bool) {
	switch {
	case status >= 500:
		return slog.LevelError, true
	case status >= 400:
		return slog.LevelWarn, true
	default:
		return slog.LevelInfo, a.debug
	}
}

// Install adds the middleware every hive server starts with: panic
// recovery, request ids and the access log.
func Install(e *echo.Echo, logger *slog.Logger, cfg *config.Config, skipRoutes ...string) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewAccessLog(logger, cfg, skipRoutes...).Handle)
}
