// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"strings"

	domainerrors "placebook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request structs by their `validate` tags
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator for echo
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns ErrValidationFailed naming every failing field
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
