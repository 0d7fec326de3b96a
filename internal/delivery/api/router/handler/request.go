package handler

import (
	"math"
	"strconv"
	"strings"

	"hive/internal/delivery/api/response"
	"hive/internal/domain/matching"

	"github.com/labstack/echo/v4"
)

// queryError marks a malformed query parameter.
type queryError struct {
	param string
}

func (e *queryError) Error() string {
	return "invalid query parameter: " + e.param
}

func queryFloat(c echo.Context, param string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(param))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &queryError{param: param}
	}

	return &v, nil
}

func queryBool(c echo.Context, param string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(param))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &queryError{param: param}
	}

	return &v, nil
}

func queryInt(c echo.Context, param string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(param))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &queryError{param: param}
	}

	return v, nil
}

// queryRange reads a min/max pair of query parameters.
func queryRange(c echo.Context, minParam, maxParam string) (matching.Range, error) {
	lo, err := queryFloat(c, minParam)
	if err != nil {
		return matching.Range{}, err
	}
	hi, err := queryFloat(c, maxParam)
	if err != nil {
		return matching.Range{}, err
	}

	return matching.Range{Min: lo, Max: hi}, nil
}

func invalidQuery(c echo.Context, err error) error {
	return response.BadRequest(c, "INVALID_QUERY", err.Error())
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// bindAndValidate binds and validates req. When it reports false the error
// response has already been written and err is what the handler returns.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}
