package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_EchoContext(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := RequestID(c)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, RequestID(c), "no stored id means a fresh one each call")

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", RequestID(c))
}

func TestRequestIDFrom(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "req-1", RequestIDFrom(WithRequestID(context.Background(), "req-1")))
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, LoggerOr(context.Background(), fallback))

	ctx := WithRequest(context.Background(), "req-7", base)
	assert.Equal(t, "req-7", RequestIDFrom(ctx))

	LoggerOr(ctx, fallback).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}
