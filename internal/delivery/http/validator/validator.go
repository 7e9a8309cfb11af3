// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "finboard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator wraps a single validator instance; it is safe for concurrent
// use and caches struct metadata across requests.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator echo invokes on c.Validate(input).
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the struct tags and maps failures onto the validation
// error kind so the error middleware renders a 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate input")
	}

	return nil
}
