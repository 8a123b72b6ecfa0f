// Package validation checks request input against struct tag rules and
// reports every failed rule as a domain.FieldError.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventbooking/internal/clock"
	"eventbooking/internal/domain"
)

// Validator wraps go-playground/validator with the custom rules used by event input.
type Validator struct {
	v     *validator.Validate
	clock clock.Clock
}

// New returns a Validator whose "future" rule compares against clk.
// It panics if a custom rule cannot be registered.
func New(clk clock.Clock) *Validator {
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), clock: clk}
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := val.v.RegisterValidation("future", val.validateFuture); err != nil {
		panic(fmt.Sprintf("validation: register future rule: %v", err))
	}
	return val
}

func (val *Validator) validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && t.After(val.clock.Now())
}

// Validate returns nil when s passes, a *domain.ValidationError listing every
// failed field otherwise.
func (val *Validator) Validate(ctx context.Context, s any) error {
	err := val.v.StructCtx(ctx, s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("validate: %w", err)
	}
	fields := make([]domain.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "future":
		return field + " must be in the future"
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return field + " is invalid"
	}
}
