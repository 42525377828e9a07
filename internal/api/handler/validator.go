package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate on bound request bodies.
type requestValidator struct {
	check *validator.Validate
}

// NewValidator builds the validator assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	return &requestValidator{check: validator.New()}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.check.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	msgs := make([]string, len(fields))
	for i, fe := range fields {
		msgs[i] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}
