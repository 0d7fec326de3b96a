// Package context carries the request id and the request-scoped logger from
// the delivery layer down to usecases and infra.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context store key for the request id.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is read from incoming requests and echoed back.
const HeaderXRequestID = echo.HeaderXRequestID

// RequestID returns the id assigned by the request id middleware. Handlers
// running without it still get a usable id.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestIDFrom returns "" when ctx did not come from a request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// LoggerOr returns the request-scoped logger of ctx, or fallback.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequest tags ctx with requestID and a child of logger carrying it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
}

// Annotate adds attrs to the request-scoped logger of ctx. It is a no-op
// outside a request.
func Annotate(ctx context.Context, attrs ...any) context.Context {
	logger := LoggerOr(ctx, nil)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(attrs...))
}
