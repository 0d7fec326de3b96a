// Package validator adapts the shared validator to echo.
package validator

import (
	domainerrors "hive/internal/domain/errors"
	"hive/internal/infra/validation"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo validator with the hub's custom tags registered.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate checks i and reports field failures as ErrValidationFailed.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	return nil
}
