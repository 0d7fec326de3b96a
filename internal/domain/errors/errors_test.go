package errors

import (
	"net/http"
	"testing"

	"hive/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("price must be positive")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "input validation failed: price must be positive", err.Error())
	assert.Empty(t, ErrValidationFailed.Details(), "sentinel is not modified")
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrStoreUnavailable.WrapMessage("failed to load hive_cart_items")

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list sessions")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list sessions", err.Details())
	assert.Equal(t, "database execution failed: connection reset", err.Error())
}
