package middleware

import (
	"log/slog"

	"hive/internal/delivery/api/response"
	deliverycontext "hive/internal/delivery/context"
	"hive/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the last stop for errors returned by handlers and
// middleware. It is installed as echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if response.WriteAppError(c, err) {
		return
	}

	// 404/405 from the router, body limit, rate limiter deny handler fallbacks.
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = "An error occurred"
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	deliverycontext.LoggerOr(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
