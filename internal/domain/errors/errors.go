// Package errors holds the application errors that reach API clients. Each
// carries the HTTP status and machine readable code the response writer uses.
package errors

import (
	"net/http"

	"hive/internal/errors"
)

// AppError is rendered by the response package as
// {"error": {"code", "message", "details"}}.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError values are compared by code, so a copy made by WithDetails still
// matches its sentinel under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds context and a stack trace for logging.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// Accounts.
var (
	ErrUserNotFound       = define(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists  = define(http.StatusConflict, "USER_ALREADY_EXISTS", "this email is already registered")
	ErrUsernameTaken      = define(http.StatusConflict, "USERNAME_TAKEN", "this username is already taken")
	ErrUserCreationFailed = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "failed to create user")
	ErrUserUpdateFailed   = define(http.StatusInternalServerError, "USER_UPDATE_FAILED", "failed to update user")
)

// Credentials and sessions.
var (
	ErrAuthNotFound         = define(http.StatusUnauthorized, "AUTH_NOT_FOUND", "no credentials found for this account")
	ErrInvalidCredentials   = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrAccessTokenInvalid   = define(http.StatusUnauthorized, "ACCESS_TOKEN_INVALID", "access token is missing, invalid or expired")
	ErrRefreshTokenInvalid  = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "refresh token is invalid or expired")
	ErrRefreshTokenNotFound = define(http.StatusNotFound, "REFRESH_TOKEN_NOT_FOUND", "refresh token not found")
	ErrRefreshTokenExpired  = define(http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "refresh token has expired")
	ErrResetTokenInvalid    = define(http.StatusUnauthorized, "RESET_TOKEN_INVALID", "password reset link is invalid or expired")
	ErrSessionLimitExceeded = define(http.StatusTooManyRequests, "SESSION_LIMIT_EXCEEDED", "maximum number of active sessions reached")
	ErrPasswordHashFailed   = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password")
	ErrPasswordStrength     = define(http.StatusBadRequest, "PASSWORD_STRENGTH", "password is too weak")
	ErrMailDeliveryFailed   = define(http.StatusBadGateway, "MAIL_DELIVERY_FAILED", "failed to send email, please retry")
)

var (
	ErrValidationFailed  = define(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrStoreUnavailable  = define(http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "storage backend is unavailable")
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed")
	ErrForbidden         = define(http.StatusForbidden, "FORBIDDEN", "access denied")
	ErrNotFound          = define(http.StatusNotFound, "NOT_FOUND", "resource not found")
)

// DatabaseExecuteError reports an unexpected driver failure. The driver
// error stays reachable through Unwrap but is never shown to clients.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
