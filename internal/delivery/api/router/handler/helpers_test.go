package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"hive/internal/delivery/api/validator"
	"hive/internal/domain/entity"
	"hive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	testMember    = usecase.Actor{UserID: uuid.MustParse("0190f0c4-3333-7000-8000-000000000003"), Roles: entity.Roles{entity.RoleMember}}
	testModerator = usecase.Actor{UserID: uuid.MustParse("0190f0c4-4444-7000-8000-000000000004"), Roles: entity.Roles{entity.RoleMember, entity.RoleModerator}}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a JSON request. Path params are
// given as name/value pairs.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

// signIn marks c as authenticated the way the auth middleware does.
func signIn(c echo.Context, actor usecase.Actor) {
	c.Set("userID", actor.UserID)
	c.Set("roles", actor.Roles)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error, "unexpected error envelope: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}
