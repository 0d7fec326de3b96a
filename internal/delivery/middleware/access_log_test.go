package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(debug bool) (*echo.Echo, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	Install(e, logger, cfg, "/health")
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/cart", func(c echo.Context) error {
		ctx := deliverycontext.Annotate(c.Request().Context(), slog.String("user_id", "u-1"))
		c.SetRequest(c.Request().WithContext(ctx))

		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	return e, &buf
}

func serve(e *echo.Echo, path string) {
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestAccessLog(t *testing.T) {
	t.Run("success is quiet outside debug", func(t *testing.T) {
		e, buf := newLoggedEcho(false)
		serve(e, "/cart")

		assert.Empty(t, buf.String())
	})

	t.Run("success in debug carries request fields", func(t *testing.T) {
		e, buf := newLoggedEcho(true)
		serve(e, "/cart")

		assert.Contains(t, buf.String(), `"route":"/cart"`)
		assert.Contains(t, buf.String(), `"user_id":"u-1"`)
		assert.Contains(t, buf.String(), `"request_id":`)
	})

	t.Run("failures are always logged", func(t *testing.T) {
		e, buf := newLoggedEcho(false)
		serve(e, "/boom")

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":502`)
	})

	t.Run("skipped routes", func(t *testing.T) {
		e, buf := newLoggedEcho(true)
		serve(e, "/health")

		assert.Empty(t, buf.String())
	})
}
