package handler

import (
	"github.com/mywallet/wallet-api/internal/core/validation"
)

// echoValidator bridges the shared validation engine to Echo so handlers can
// call c.Validate(req). Failures surface as *domain.ValidationError and are
// rendered by the central error handler.
type echoValidator struct{}

// NewValidator returns the validator to assign to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
