package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "hive/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id, echoed in X-Request-ID,
// and a logger carrying it. A client supplied id is kept when it is short
// printable ASCII.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := strings.TrimSpace(req.Header.Get(deliverycontext.HeaderXRequestID))
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
		c.SetRequest(req.WithContext(deliverycontext.WithRequest(req.Context(), id, m.logger)))

		return next(c)
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	return !strings.ContainsFunc(id, func(r rune) bool { return r < '!' || r > '~' })
}
