// Package response writes the JSON envelope shared by every API route.
//
//	{"data": ..., "meta": {"request_id": "..."}}
//	{"error": {"code": "...", "message": "...", "details": ...}, "meta": {...}}
package response

import (
	"net/http"

	deliverycontext "hive/internal/delivery/context"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/errors"

	"github.com/labstack/echo/v4"
)

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

// Problem is the error half of the envelope. Code is machine readable and
// stable; Message is meant for people.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type dataEnvelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type problemEnvelope struct {
	Error Problem `json:"error"`
	Meta  Meta    `json:"meta"`
}

func metaOf(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.RequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, dataEnvelope{Data: data, Meta: metaOf(c)})
}

// Error writes a problem. Details never leave the server on 5xx, 401 or 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if hidesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, problemEnvelope{
		Error: Problem{Code: errorCode, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

func hidesDetails(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is BadRequest for bodies echo could not decode.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func TooManyRequests(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusTooManyRequests, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// WriteAppError writes err when it carries a domain AppError and reports
// whether it did.
func WriteAppError(c echo.Context, err error) bool {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return false
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}
	_ = Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

	return true
}

// HandleAppError converts domain errors to HTTP responses. Anything else is
// passed on to the echo error handler with its stack.
func HandleAppError(c echo.Context, err error) error {
	if WriteAppError(c, err) {
		return nil
	}

	return errors.WithStack(err)
}
