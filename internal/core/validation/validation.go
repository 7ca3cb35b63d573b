// Package validation holds the input format rules shared by the services and
// the HTTP layer. Rules are expressed as go-playground/validator tags so the
// same engine validates both request schemas and service-level inputs.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// tld restricts an email's top-level domain to the values listed in the
	// tag parameter, e.g. `tld=com net`. The email must also carry at least
	// two domain segments.
	_ = v.RegisterValidation("tld", func(fl validator.FieldLevel) bool {
		addr := fl.Field().String()
		at := strings.LastIndex(addr, "@")
		if at < 0 {
			return false
		}
		segments := strings.Split(addr[at+1:], ".")
		if len(segments) < 2 {
			return false
		}
		tld := strings.ToLower(segments[len(segments)-1])
		for _, allowed := range strings.Fields(fl.Param()) {
			if tld == allowed {
				return true
			}
		}
		return false
	})
	return v
}

type signupInput struct {
	Name     string `validate:"required,alphanum,min=3,max=24"`
	Email    string `validate:"required,email,tld=com net"`
	Password string `validate:"required,alphanum,min=3,max=30"`
}

type loginInput struct {
	Email    string `validate:"required,email,tld=com net"`
	Password string `validate:"required,alphanum,min=3,max=30"`
}

type entryInput struct {
	Amount      *int64 `validate:"required"`
	Description string `validate:"required,alphanum"`
}

// Signup validates registration input against the user schema.
func Signup(name, email, password string) error {
	return Struct(signupInput{Name: name, Email: email, Password: password})
}

// Login validates login input against the credentials schema.
func Login(email, password string) error {
	return Struct(loginInput{Email: email, Password: password})
}

// Entry validates a ledger append. A nil amount means the field was absent.
func Entry(amount *int64, description string) error {
	return Struct(entryInput{Amount: amount, Description: description})
}

// Struct runs the validator over any tagged struct and converts failures into
// a domain.ValidationError listing one message per violated rule.
func Struct(i any) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fieldMessage(fe))
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "alphanum":
		return field + " must contain only letters and digits"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "tld":
		return fmt.Sprintf("%s domain must end in one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
