// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "tracer/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator.Validate instance for echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New constructs a RequestValidator using struct tags.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Violations surface as the domain
// validation error so the error handler maps them to a 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
