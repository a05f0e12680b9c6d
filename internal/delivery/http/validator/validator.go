// Package validator binds go-playground/validator as the echo request validator.
package validator

import (
	domainerrors "rossimethod/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler renders the standard envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
